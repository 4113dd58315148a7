package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInterval indicates an interval whose end is not greater than its start.
	ErrEmptyInterval = errors.New("interval: end must be greater than start")
	// ErrOverlap indicates two input intervals share at least one key.
	ErrOverlap = errors.New("interval: intervals overlap")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("interval: invalid option supplied")
)

// OverlapError reports the first pair of overlapping intervals found while
// building a Set under RejectOverlap.
type OverlapError[K Key] struct {
	Left, Right Interval[K]
}

func (e *OverlapError[K]) Error() string {
	return fmt.Sprintf("interval: %v overlaps %v", e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrOverlap.
func (e *OverlapError[K]) Unwrap() error { return ErrOverlap }
