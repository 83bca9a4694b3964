package tags

import "strings"

// Category identifies a selection slot in the tag taxonomy.
type Category int

const (
	Genres Category = iota
	Setting
	Protagonist
	Antagonist
	SupportingCharacter
	Finale
	ThemeAndEvents
)

// categoryNames maps categories to their canonical pool key.
var categoryNames = map[Category]string{
	Genres:              "GENRES",
	Setting:             "SETTING",
	Protagonist:         "PROTAGONIST",
	Antagonist:          "ANTAGONIST",
	SupportingCharacter: "SUPPORTINGCHARACTER",
	Finale:              "FINALE",
	ThemeAndEvents:      "THEME_and_EVENTS",
}

// categoryPrefixes maps tag prefixes to categories. Theme and event tags
// appear with three historical prefix spellings; all of them land in the
// combined ThemeAndEvents category.
var categoryPrefixes = map[string]Category{
	"GENRES_":              Genres,
	"SETTING_":             Setting,
	"PROTAGONIST_":         Protagonist,
	"ANTAGONIST_":          Antagonist,
	"SUPPORTINGCHARACTER_": SupportingCharacter,
	"FINALE_":              Finale,
	"THEME_":               ThemeAndEvents,
	"EVENT_":               ThemeAndEvents,
	"EVENTS_":              ThemeAndEvents,
}

// AllCategories lists every category in slot order.
func AllCategories() []Category {
	return []Category{Genres, Setting, Protagonist, Antagonist, SupportingCharacter, Finale, ThemeAndEvents}
}

// String returns the canonical pool key for the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseCategory resolves a pool key to its category.
func ParseCategory(name string) (Category, bool) {
	for cat, n := range categoryNames {
		if n == name {
			return cat, true
		}
	}
	return 0, false
}

// CategoryOf resolves a tag's category from its prefix. The engine never
// requires this to succeed; tags with unrecognized prefixes are still valid
// selection candidates, they just don't belong to a known slot.
func CategoryOf(tag Tag) (Category, bool) {
	s := string(tag)
	for prefix, cat := range categoryPrefixes {
		if strings.HasPrefix(s, prefix) {
			return cat, true
		}
	}
	return 0, false
}
