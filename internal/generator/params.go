package generator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Params configures a single generation run. Every field is required;
// a missing field is a configuration error and the run fails closed.
// NumSupport and AddAntagonist are pointers because their zero values are
// legitimate settings and absence must still be detectable.
type Params struct {
	MinScore      float64 `json:"min_score" yaml:"min_score" validate:"required,gt=0"`
	NumGenres     int     `json:"num_genres_target" yaml:"num_genres_target" validate:"required,min=1,max=3"`
	NumThemes     int     `json:"num_themes_target" yaml:"num_themes_target" validate:"required,min=1,max=3"`
	NumFinales    int     `json:"num_finales_target" yaml:"num_finales_target" validate:"required,min=1,max=2"`
	NumSupport    *int    `json:"num_support_target" yaml:"num_support_target" validate:"required,min=0,max=2"`
	AddAntagonist *bool   `json:"add_antagonist" yaml:"add_antagonist" validate:"required"`
}

var paramsValidator = validator.New()

// Validate checks that all required fields are present and within range.
func (p Params) Validate() error {
	if err := paramsValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid generation parameters: %w", err)
	}
	return nil
}

// SupportTarget returns the supporting-character target, 0 when unset.
func (p Params) SupportTarget() int {
	if p.NumSupport == nil {
		return 0
	}
	return *p.NumSupport
}

// WantsAntagonist reports whether an antagonist slot should be attempted.
func (p Params) WantsAntagonist() bool {
	return p.AddAntagonist != nil && *p.AddAntagonist
}

// FallbackThreshold is the relaxed bar used for mandatory picks when the
// strict bar yields no candidates: one point below MinScore, floored at 0.
func (p Params) FallbackThreshold() float64 {
	f := p.MinScore - 1.0
	if f < 0 {
		return 0
	}
	return f
}

// IntPtr and BoolPtr build pointer fields for Params literals.
func IntPtr(v int) *int    { return &v }
func BoolPtr(v bool) *bool { return &v }
