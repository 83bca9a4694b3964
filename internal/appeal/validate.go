package appeal

import (
	"fmt"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// Validation is the structured outcome of checking a user-curated selection
// against the category cardinality rules.
type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errorMessages,omitempty"`
}

// ValidateSelection checks the cardinality rules before any calculation:
// 1-3 genres, exactly one setting, exactly one protagonist, at most one
// antagonist, at most one finale, and at least one tag overall. The input is
// not mutated.
func ValidateSelection(selection map[tags.Category][]tags.Tag) Validation {
	var errs []string

	if n := len(selection[tags.Genres]); n < 1 || n > 3 {
		errs = append(errs, fmt.Sprintf("between 1 and 3 genres must be selected, got %d", n))
	}
	if n := len(selection[tags.Setting]); n != 1 {
		errs = append(errs, fmt.Sprintf("exactly one setting must be selected, got %d", n))
	}
	if n := len(selection[tags.Protagonist]); n != 1 {
		errs = append(errs, fmt.Sprintf("exactly one protagonist must be selected, got %d", n))
	}
	if n := len(selection[tags.Antagonist]); n > 1 {
		errs = append(errs, fmt.Sprintf("at most one antagonist may be selected, got %d", n))
	}
	if n := len(selection[tags.Finale]); n > 1 {
		errs = append(errs, fmt.Sprintf("at most one finale may be selected, got %d", n))
	}

	total := 0
	for _, list := range selection {
		total += len(list)
	}
	if total == 0 {
		errs = append(errs, "at least one tag must be selected")
	}

	return Validation{IsValid: len(errs) == 0, Errors: errs}
}
