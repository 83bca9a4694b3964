package generator

import (
	"errors"
	"fmt"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// Sentinel causes for selection failure.
var (
	// ErrPoolExhausted means a mandatory slot had no tags left to draw from.
	ErrPoolExhausted = errors.New("tag pool exhausted")
	// ErrNoCompatible means no candidate cleared the threshold, even after
	// the fallback pass.
	ErrNoCompatible = errors.New("no compatible candidate")
)

// SelectionError is the fatal failure of a generation run: a mandatory slot
// could not be filled. The run produces no idea; partial state is discarded.
type SelectionError struct {
	Slot  tags.Category
	Pick  int // 1-based index of the pick within the slot
	Cause error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection failed at %s pick %d: %v", e.Slot, e.Pick, e.Cause)
}

func (e *SelectionError) Unwrap() error {
	return e.Cause
}

// IsSelectionError reports whether err is a fatal selection failure, as
// opposed to a configuration error.
func IsSelectionError(err error) bool {
	var se *SelectionError
	return errors.As(err, &se)
}
