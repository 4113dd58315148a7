package rangemap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spans/interval"
)

const headerSuffix = "map:"

// ParseInts splits s on whitespace and parses every field as an int64.
func ParseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, f)
		}
		out = append(out, n)
	}

	return out, nil
}

// ParseTriple parses "destination source length" into an interval over
// [source, source+length) shifting keys by destination-source.
func ParseTriple(line string, tags ...string) (interval.Interval[int64], error) {
	nums, err := ParseInts(line)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	if len(nums) != 3 {
		return interval.Interval[int64]{}, fmt.Errorf("%w: want 3 integers, got %d", ErrMalformedLine, len(nums))
	}

	return interval.FromTriple(nums[0], nums[1], nums[2], tags...)
}

// ParseStages reads "<name> map:" sections of range triples from r.
// Triples are tagged with their stage name. Errors name the 1-based line.
func ParseStages(r io.Reader, opts ...Option) ([]Stage, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		stages  []Stage
		name    string
		ivs     []interval.Interval[int64]
		inStage bool
		lineNo  int
	)
	flush := func() error {
		if !inStage {
			return nil
		}
		set, err := interval.NewSet(ivs, o.SetOptions...)
		if err != nil {
			return fmt.Errorf("rangemap: stage %q: %w", name, err)
		}
		stages = append(stages, Stage{Name: name, Map: set})
		ivs = nil

		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, headerSuffix):
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.TrimSpace(strings.TrimSuffix(line, headerSuffix))
			inStage = true
		case !inStage:
			// preamble belongs to the caller
			continue
		default:
			iv, err := ParseTriple(line, name)
			if err != nil {
				return nil, fmt.Errorf("rangemap: line %d: %w", lineNo, err)
			}
			ivs = append(ivs, iv)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rangemap: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return stages, nil
}

// QueryFromPoints returns a set covering exactly the given keys.
// Duplicates collapse and consecutive keys fuse into one interval.
func QueryFromPoints(vals []int64) (interval.Set[int64], error) {
	ivs := make([]interval.Interval[int64], 0, len(vals))
	for _, v := range vals {
		iv, err := interval.New(v, v+1, 0)
		if err != nil {
			return interval.Set[int64]{}, fmt.Errorf("rangemap: point %d: %w", v, err)
		}
		ivs = append(ivs, iv)
	}

	return unionSet(ivs)
}

// QueryFromPairs reads vals as "start length" pairs and returns the set
// covering their union.
func QueryFromPairs(vals []int64) (interval.Set[int64], error) {
	if len(vals)%2 != 0 {
		return interval.Set[int64]{}, fmt.Errorf("%w: got %d values", ErrOddPairs, len(vals))
	}
	ivs := make([]interval.Interval[int64], 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		iv, err := interval.FromTriple(vals[i], vals[i], vals[i+1])
		if err != nil {
			return interval.Set[int64]{}, fmt.Errorf("rangemap: pair %d: %w", i/2, err)
		}
		ivs = append(ivs, iv)
	}

	return unionSet(ivs)
}

func unionSet(ivs []interval.Interval[int64]) (interval.Set[int64], error) {
	return interval.NewSet(ivs, interval.WithOverlapPolicy(interval.FirstWins), interval.WithCoalesce())
}
