package rangemap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spans/interval"
)

// Sentinel errors for parsing and pipeline evaluation.
var (
	// ErrMalformedLine is returned for a line that is neither a header nor a triple.
	ErrMalformedLine = errors.New("rangemap: malformed line")

	// ErrOddPairs is returned when start/length pairs have an odd element count.
	ErrOddPairs = errors.New("rangemap: values must come in start/length pairs")

	// ErrEmptyQuery is returned when a query covers no key.
	ErrEmptyQuery = errors.New("rangemap: query is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rangemap: invalid option supplied")
)

// Stage is one named remapping step.
type Stage struct {
	Name string
	Map  interval.Set[int64]
}

// Option configures parsing and pipelines via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by ParseStages and Pipeline.
type Options struct {
	// SetOptions are passed to interval.NewSet for every parsed stage.
	SetOptions []interval.Option

	// OnStage is called after each stage is folded into the composition,
	// with the stage name and the composition so far.
	OnStage func(name string, composed interval.Set[int64])

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with first-wins overlap handling (the
// earliest triple covering a key decides its mapping) and a no-op hook.
func DefaultOptions() Options {
	return Options{
		SetOptions: []interval.Option{interval.WithOverlapPolicy(interval.FirstWins)},
		OnStage:    func(string, interval.Set[int64]) {},
	}
}

// WithSetOptions replaces the interval.NewSet options used for parsed stages.
func WithSetOptions(opts ...interval.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			if opt == nil {
				o.err = fmt.Errorf("%w: nil interval option", ErrOptionViolation)
				return
			}
		}
		o.SetOptions = opts
	}
}

// WithOnStage registers a callback run after every composition step.
func WithOnStage(fn func(name string, composed interval.Set[int64])) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
