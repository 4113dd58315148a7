package interval

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// NewSet builds a Set from ivs, which may be given in any order.
//
// Every interval must be non-empty (ErrEmptyInterval). Overlapping input
// is rejected with an *OverlapError unless FirstWins is selected, in which
// case it is decomposed so each key keeps the earliest interval covering it.
// The input slice is not retained or modified.
func NewSet[K Key](ivs []Interval[K], opts ...Option) (Set[K], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Set[K]{}, o.err
	}

	for i, iv := range ivs {
		if iv.Start >= iv.End {
			return Set[K]{}, fmt.Errorf("%w: index %d [%d, %d)", ErrEmptyInterval, i, iv.Start, iv.End)
		}
	}

	var out []Interval[K]
	switch o.Overlap {
	case FirstWins:
		out = firstWins(ivs)
		sortByStart(out)
	default:
		out = make([]Interval[K], len(ivs))
		for i, iv := range ivs {
			out[i] = iv.clone()
		}
		sortByStart(out)
		for i := 1; i < len(out); i++ {
			if out[i-1].End > out[i].Start {
				return Set[K]{}, &OverlapError[K]{Left: out[i-1], Right: out[i]}
			}
		}
	}

	s := Set[K]{ivs: out}
	if o.Coalesce {
		s = s.Coalesce()
	}

	return s, nil
}

// firstWins clips every interval around all intervals preceding it.
func firstWins[K Key](ivs []Interval[K]) []Interval[K] {
	var kept []Interval[K]
	for _, iv := range ivs {
		pieces := []Interval[K]{iv.clone()}
		for _, prev := range kept {
			pieces = subtractEach(pieces, prev)
			if len(pieces) == 0 {
				break
			}
		}
		kept = append(kept, pieces...)
	}

	return kept
}

// subtractEach removes o from every piece.
func subtractEach[K Key](pieces []Interval[K], o Interval[K]) []Interval[K] {
	out := make([]Interval[K], 0, len(pieces)+1)
	for _, p := range pieces {
		out = append(out, p.Subtract(o)...)
	}

	return out
}

func sortByStart[K Key](ivs []Interval[K]) {
	slices.SortStableFunc(ivs, func(a, b Interval[K]) int { return cmp.Compare(a.Start, b.Start) })
}

// fromPieces wraps intervals already known to be disjoint.
func fromPieces[K Key](ivs []Interval[K]) Set[K] {
	sortByStart(ivs)

	return Set[K]{ivs: ivs}
}

// Intervals returns a copy of the set's intervals in ascending order.
func (s Set[K]) Intervals() []Interval[K] {
	out := make([]Interval[K], len(s.ivs))
	for i, iv := range s.ivs {
		out[i] = iv.clone()
	}

	return out
}

// Len returns the number of intervals.
func (s Set[K]) Len() int { return len(s.ivs) }

// IsEmpty reports whether the set covers no key.
func (s Set[K]) IsEmpty() bool { return len(s.ivs) == 0 }

// Span returns the total number of keys covered.
func (s Set[K]) Span() K {
	var n K
	for _, iv := range s.ivs {
		n += iv.Len()
	}

	return n
}

// find locates the interval containing v.
func (s Set[K]) find(v K) (int, bool) {
	return slices.BinarySearchFunc(s.ivs, v, func(iv Interval[K], v K) int {
		switch {
		case iv.End <= v:
			return -1
		case iv.Start > v:
			return 1
		default:
			return 0
		}
	})
}

// Covers reports whether some interval contains v.
func (s Set[K]) Covers(v K) bool {
	_, ok := s.find(v)

	return ok
}

// Convert maps v through the set: v plus the offset of the interval
// containing it, or v itself when no interval does.
func (s Set[K]) Convert(v K) K {
	if i, ok := s.find(v); ok {
		return s.ivs[i].Apply(v)
	}

	return v
}

// Intersect returns every overlap between s and o, with offsets summed
// (s's offset first, then o's) and tags concatenated in the same order.
// Both sets are swept once; the interval ending first is advanced.
func (s Set[K]) Intersect(o Set[K]) Set[K] {
	var out []Interval[K]
	ai, bi := 0, 0
	for ai < len(s.ivs) && bi < len(o.ivs) {
		a, b := s.ivs[ai], o.ivs[bi]
		if x, ok := a.Intersect(b); ok {
			out = append(out, x)
		}
		if a.End < b.End {
			ai++
		} else {
			bi++
		}
	}

	return fromPieces(out)
}

// Subtract returns the keys of s not covered by o. Surviving pieces keep
// the offsets and tags of the s interval they came from.
func (s Set[K]) Subtract(o Set[K]) Set[K] {
	var out []Interval[K]
	for _, a := range s.ivs {
		pieces := []Interval[K]{a.clone()}
		for _, b := range o.overlapping(a) {
			pieces = subtractEach(pieces, b)
			if len(pieces) == 0 {
				break
			}
		}
		out = append(out, pieces...)
	}

	return fromPieces(out)
}

// overlapping returns the sub-slice of s whose intervals may overlap iv.
func (s Set[K]) overlapping(iv Interval[K]) []Interval[K] {
	lo, _ := slices.BinarySearchFunc(s.ivs, iv.Start, func(x Interval[K], v K) int {
		if x.End <= v {
			return -1
		}
		return 1
	})
	hi := lo
	for hi < len(s.ivs) && s.ivs[hi].Start < iv.End {
		hi++
	}

	return s.ivs[lo:hi]
}

// Merge composes two remappings: the result applies s first and o second,
// so s.Merge(o).Convert(x) == o.Convert(s.Convert(x)) for every x.
//
// Each interval of s is moved to its output range, split against o there,
// and moved back. Pieces landing inside o carry the summed offset; the
// others keep s's offset. Keys of o outside the coverage of s keep o's
// offset. The three kinds of piece are disjoint by construction.
func (s Set[K]) Merge(o Set[K]) Set[K] {
	var out []Interval[K]
	for _, a := range s.ivs {
		img := a.Image()
		rest := []Interval[K]{img}
		for _, b := range o.overlapping(img) {
			if x, ok := img.Intersect(b); ok {
				out = append(out, x.Translate(-a.Offset))
			}
			rest = subtractEach(rest, b)
		}
		for _, r := range rest {
			out = append(out, r.Translate(-a.Offset))
		}
	}
	out = append(out, o.Subtract(s).ivs...)

	return fromPieces(out)
}

// Compose folds Merge over stages in order: the result applies
// stages[0] first and the last stage last. No stages yields the identity.
func Compose[K Key](stages ...Set[K]) Set[K] {
	var acc Set[K]
	for _, st := range stages {
		acc = acc.Merge(st)
	}

	return acc
}

// Restrict limits s to the keys of q; q's offsets and tags are ignored.
// Keys of q that s does not cover appear with offset 0, so the result
// describes where every key of q ends up.
func (s Set[K]) Restrict(q Set[K]) Set[K] {
	dom := q.Domain()
	out := s.Intersect(dom).ivs
	out = append(out, dom.Subtract(s).ivs...)

	return fromPieces(out)
}

// Domain returns the keys covered by s as offset-free, untagged intervals,
// with touching intervals fused.
func (s Set[K]) Domain() Set[K] {
	out := make([]Interval[K], len(s.ivs))
	for i, iv := range s.ivs {
		out[i] = Interval[K]{Start: iv.Start, End: iv.End}
	}

	return Set[K]{ivs: out}.Coalesce()
}

// Coalesce fuses touching intervals that share offset and tags.
func (s Set[K]) Coalesce() Set[K] {
	out := make([]Interval[K], 0, len(s.ivs))
	for _, iv := range s.ivs {
		if n := len(out); n > 0 && out[n-1].End == iv.Start && out[n-1].sameLabel(iv) {
			out[n-1].End = iv.End
			continue
		}
		out = append(out, iv.clone())
	}

	return Set[K]{ivs: out}
}

// MinOutput returns the smallest value any covered key maps to.
// The boolean is false for the empty set.
func (s Set[K]) MinOutput() (K, bool) {
	if len(s.ivs) == 0 {
		return 0, false
	}
	best := s.ivs[0].Start + s.ivs[0].Offset
	for _, iv := range s.ivs[1:] {
		best = min(best, iv.Start+iv.Offset)
	}

	return best, true
}

// MaxOutput returns the exclusive upper bound of the values covered keys
// map to, i.e. max(End+Offset). The boolean is false for the empty set.
func (s Set[K]) MaxOutput() (K, bool) {
	if len(s.ivs) == 0 {
		return 0, false
	}
	best := s.ivs[0].End + s.ivs[0].Offset
	for _, iv := range s.ivs[1:] {
		best = max(best, iv.End+iv.Offset)
	}

	return best, true
}

// String renders the set as "[iv, iv, ...]".
func (s Set[K]) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
