// Package spans is an in-memory algebra for integer range remappings —
// sorted, disjoint half-open intervals that each shift their keys by an
// offset, plus the tooling to read and compose chains of them.
//
// 🚀 What is a range remapping?
//
//	A function over integers described piecewise: keys in [50, 98) move
//	by +2, keys in [98, 100) move by -48, everything else stays put.
//	Chains of such stages (seed → soil → fertilizer → …) collapse into a
//	single equivalent stage, so questions like "what is the lowest value
//	reachable from these billion keys" cost a handful of interval
//	operations instead of a billion lookups.
//
// ✨ Subpackages:
//
//	interval/ — Interval and Set: intersect, subtract, merge (composition),
//	            restrict, min/max output; validated construction
//	rangemap/ — "<name> map:" sections of range triples, query builders,
//	            and a Pipeline that composes stages with per-stage hooks
//
// Quick ASCII example (composition of +3 on [0,10) then -2 on [5,15)):
//
//	key:     0    2         10    15
//	         ├─+3─┼────+1────┼──-2─┤
//
//	go get github.com/katalvlaran/spans
package spans
