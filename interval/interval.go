package interval

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// New returns the interval [start, end) shifting keys by offset.
// Returns ErrEmptyInterval unless start < end.
func New[K Key](start, end, offset K, tags ...string) (Interval[K], error) {
	if start >= end {
		return Interval[K]{}, fmt.Errorf("%w: [%d, %d)", ErrEmptyInterval, start, end)
	}

	return Interval[K]{Start: start, End: end, Offset: offset, Tags: slices.Clone(tags)}, nil
}

// FromTriple builds an interval from a "destination source length" range
// description: keys [src, src+length) map onto [dst, dst+length).
func FromTriple[K Key](dst, src, length K, tags ...string) (Interval[K], error) {
	if length <= 0 {
		return Interval[K]{}, fmt.Errorf("%w: length %d", ErrEmptyInterval, length)
	}

	return New(src, src+length, dst-src, tags...)
}

// Len returns the number of keys covered.
func (iv Interval[K]) Len() K { return iv.End - iv.Start }

// Contains reports whether v lies in [Start, End).
func (iv Interval[K]) Contains(v K) bool { return iv.Start <= v && v < iv.End }

// Apply shifts v by the interval's offset. It does not check containment.
func (iv Interval[K]) Apply(v K) K { return v + iv.Offset }

// Overlaps reports whether the two intervals share a key.
// Touching intervals (iv.End == o.Start) do not overlap.
func (iv Interval[K]) Overlaps(o Interval[K]) bool {
	return max(iv.Start, o.Start) < min(iv.End, o.End)
}

// Intersect returns the overlap of iv and o. The result's offset is the
// sum of both offsets and its tags are iv's followed by o's.
// The boolean is false when the intervals do not overlap.
func (iv Interval[K]) Intersect(o Interval[K]) (Interval[K], bool) {
	left, right := max(iv.Start, o.Start), min(iv.End, o.End)
	if left >= right {
		return Interval[K]{}, false
	}

	return Interval[K]{
		Start:  left,
		End:    right,
		Offset: iv.Offset + o.Offset,
		Tags:   joinTags(iv.Tags, o.Tags),
	}, true
}

// Subtract removes the keys of o from iv and returns what is left:
// nothing, one clipped interval or two pieces around a hole.
// Every piece keeps iv's offset and tags; o's offset is irrelevant.
func (iv Interval[K]) Subtract(o Interval[K]) []Interval[K] {
	if !iv.Overlaps(o) {
		return []Interval[K]{iv.clone()}
	}

	out := make([]Interval[K], 0, 2)
	if iv.Start < o.Start {
		left := iv.clone()
		left.End = o.Start
		out = append(out, left)
	}
	if o.End < iv.End {
		right := iv.clone()
		right.Start = o.End
		out = append(out, right)
	}

	return out
}

// Translate moves both bounds by delta, keeping offset and tags.
func (iv Interval[K]) Translate(delta K) Interval[K] {
	out := iv.clone()
	out.Start += delta
	out.End += delta

	return out
}

// Image returns iv moved into its output coordinates, [Start+Offset, End+Offset).
// The offset is kept so the move can be undone with Translate(-Offset).
func (iv Interval[K]) Image() Interval[K] { return iv.Translate(iv.Offset) }

// String renders the interval as "[start, end) +offset", followed by
// "{tag,...}" when tags are present.
func (iv Interval[K]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d, %d) %+d", iv.Start, iv.End, iv.Offset)
	if len(iv.Tags) > 0 {
		b.WriteString(" {")
		b.WriteString(strings.Join(iv.Tags, ","))
		b.WriteByte('}')
	}

	return b.String()
}

func (iv Interval[K]) clone() Interval[K] {
	iv.Tags = slices.Clone(iv.Tags)

	return iv
}

// sameLabel reports whether two intervals can be fused when they touch.
func (iv Interval[K]) sameLabel(o Interval[K]) bool {
	return iv.Offset == o.Offset && slices.Equal(iv.Tags, o.Tags)
}

func joinTags(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
