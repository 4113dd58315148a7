// Package interval implements an algebra over sorted, disjoint sets of
// half-open integer intervals, each carrying an additive offset.
//
// 🚀 What is a Set?
//
//	A Set is a partial remapping function over integers. A key inside
//	[Start, End) with offset o maps to key+o; a key outside every interval
//	maps to itself. Sets are immutable values: every operation returns a
//	new Set and never touches its inputs.
//
// ✨ Operations:
//   - Intersect — overlapping sub-ranges, offsets summed (O(n+m) sweep)
//   - Subtract  — the receiver minus the keys of another set
//   - Merge     — function composition: s.Merge(o).Convert(x) == o.Convert(s.Convert(x))
//   - Restrict  — a remapping limited to the keys of a query set
//   - MinOutput / MaxOutput — output bounds without enumerating keys
//
// ⚙️ Usage:
//
//	soil, _ := interval.NewSet([]interval.Interval[int64]{
//		{Start: 98, End: 100, Offset: -48},
//		{Start: 50, End: 98, Offset: 2},
//	})
//	fert, _ := interval.NewSet([]interval.Interval[int64]{
//		{Start: 15, End: 52, Offset: -15},
//	})
//	both := soil.Merge(fert)
//	both.Convert(79) // == fert.Convert(soil.Convert(79))
//
// Construction validates its input: intervals must be non-empty and, by
// default, pairwise disjoint (see WithOverlapPolicy for the alternative
// first-wins decomposition).
//
// Complexity:
//
//   - Convert:   O(log n)
//   - Intersect: O(n + m)
//   - Subtract:  O(n·m) worst case
//   - Merge:     O(n·log m + m·n)
package interval
