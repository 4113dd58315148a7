// Package rangemap reads textual remapping stages and composes them into a
// single interval.Set.
//
// Input format:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//
// Each header line ends in "map:"; the text before it names the stage.
// Every following line is a "destination source length" triple until the
// next header. Blank lines are ignored, as is anything before the first
// header (callers parse their own preamble).
//
// A Pipeline folds its stages with interval.Set.Merge, so the composed map
// converts a key exactly as running it through every stage in order would.
// Every interval is tagged with the name of the stage it came from, and
// tags accumulate through composition, so each composed piece records
// which stages actually moved it.
//
// rangemap never opens files; hand it any io.Reader.
package rangemap
