package interval

import "fmt"

// OverlapPolicy decides how NewSet treats input intervals that overlap.
//
//   - RejectOverlap — fail with an *OverlapError (wrapping ErrOverlap).
//   - FirstWins     — every key belongs to the earliest input interval
//     covering it; later intervals are clipped around earlier ones.
type OverlapPolicy int

const (
	// RejectOverlap refuses overlapping input.
	RejectOverlap OverlapPolicy = iota

	// FirstWins decomposes overlapping input in input order.
	FirstWins
)

// Option configures NewSet via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the construction parameters of a Set.
type Options struct {
	// Overlap selects the policy for overlapping input.
	Overlap OverlapPolicy

	// Coalesce fuses touching intervals with equal offset and tags.
	Coalesce bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options that reject overlap and keep intervals
// exactly as given.
func DefaultOptions() Options {
	return Options{
		Overlap:  RejectOverlap,
		Coalesce: false,
	}
}

// WithOverlapPolicy selects how overlapping input is handled.
func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectOverlap, FirstWins:
			o.Overlap = p
		default:
			o.err = fmt.Errorf("%w: unknown overlap policy %d", ErrOptionViolation, p)
		}
	}
}

// WithCoalesce fuses touching intervals that share offset and tags.
func WithCoalesce() Option {
	return func(o *Options) {
		o.Coalesce = true
	}
}
