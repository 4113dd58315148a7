package interval

import (
	"golang.org/x/exp/constraints"
)

// Key is the set of integer types an Interval can be keyed by.
// Offsets share the key type, so only signed integers qualify.
type Key interface {
	constraints.Signed
}

// Interval is the half-open range [Start, End) together with the Offset
// added to every key inside it. Tags record which source intervals
// produced this one; intersection and composition concatenate them.
//
// A valid Interval always has Start < End.
type Interval[K Key] struct {
	Start  K
	End    K
	Offset K
	Tags   []string
}

// Set is an ordered collection of pairwise disjoint intervals, sorted by
// Start. It represents the function that shifts keys inside an interval
// by that interval's Offset and leaves every other key unchanged.
//
// The zero value is the empty Set, i.e. the identity function.
// Sets are immutable; share them freely across goroutines.
type Set[K Key] struct {
	ivs []Interval[K]
}
