package appeal

import (
	"strings"
	"testing"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

func TestValidateSelection(t *testing.T) {
	minimal := func() map[tags.Category][]tags.Tag {
		return map[tags.Category][]tags.Tag{
			tags.Genres:      {"GENRES_ACTION"},
			tags.Setting:     {"SETTING_SPACE"},
			tags.Protagonist: {"PROTAGONIST_DETECTIVE"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(map[tags.Category][]tags.Tag)
		valid   bool
		message string
	}{
		{"minimal valid selection", func(map[tags.Category][]tags.Tag) {}, true, ""},
		{"three genres valid", func(s map[tags.Category][]tags.Tag) {
			s[tags.Genres] = []tags.Tag{"GENRES_ACTION", "GENRES_COMEDY", "GENRES_DRAMA"}
		}, true, ""},
		{"zero genres", func(s map[tags.Category][]tags.Tag) {
			delete(s, tags.Genres)
		}, false, "genre"},
		{"four genres", func(s map[tags.Category][]tags.Tag) {
			s[tags.Genres] = []tags.Tag{"G1", "G2", "G3", "G4"}
		}, false, "genre"},
		{"two settings", func(s map[tags.Category][]tags.Tag) {
			s[tags.Setting] = []tags.Tag{"S1", "S2"}
		}, false, "setting"},
		{"missing protagonist", func(s map[tags.Category][]tags.Tag) {
			delete(s, tags.Protagonist)
		}, false, "protagonist"},
		{"two antagonists", func(s map[tags.Category][]tags.Tag) {
			s[tags.Antagonist] = []tags.Tag{"A1", "A2"}
		}, false, "antagonist"},
		{"two finales", func(s map[tags.Category][]tags.Tag) {
			s[tags.Finale] = []tags.Tag{"F1", "F2"}
		}, false, "finale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := minimal()
			tt.mutate(sel)

			v := ValidateSelection(sel)
			if v.IsValid != tt.valid {
				t.Fatalf("IsValid = %v, want %v (errors: %v)", v.IsValid, tt.valid, v.Errors)
			}
			if tt.valid {
				if len(v.Errors) != 0 {
					t.Errorf("valid selection carries errors: %v", v.Errors)
				}
				return
			}
			found := false
			for _, msg := range v.Errors {
				if strings.Contains(strings.ToLower(msg), tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v lack a message about %q", v.Errors, tt.message)
			}
		})
	}
}

func TestValidateSelectionEmpty(t *testing.T) {
	v := ValidateSelection(map[tags.Category][]tags.Tag{})
	if v.IsValid {
		t.Fatal("empty selection reported valid")
	}
	found := false
	for _, msg := range v.Errors {
		if strings.Contains(msg, "at least one tag") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v lack the no-tags message", v.Errors)
	}
}

func TestValidateSelectionDoesNotMutate(t *testing.T) {
	sel := map[tags.Category][]tags.Tag{
		tags.Genres: {"GENRES_ACTION"},
	}
	ValidateSelection(sel)
	if len(sel) != 1 || len(sel[tags.Genres]) != 1 {
		t.Errorf("selection mutated by validation: %v", sel)
	}
}
