package rangemap_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spans/interval"
	"github.com/katalvlaran/spans/rangemap"
)

const almanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// seeds extracts the numbers of the almanac's preamble line.
func seeds(t *testing.T) []int64 {
	t.Helper()
	first, _, _ := strings.Cut(almanac, "\n")
	_, list, ok := strings.Cut(first, ":")
	require.True(t, ok)
	vals, err := rangemap.ParseInts(list)
	require.NoError(t, err)

	return vals
}

func pipeline(t *testing.T, opts ...rangemap.Option) *rangemap.Pipeline {
	t.Helper()
	stages, err := rangemap.ParseStages(strings.NewReader(almanac))
	require.NoError(t, err)
	p, err := rangemap.NewPipeline(stages, opts...)
	require.NoError(t, err)

	return p
}

// TestParseInts covers whitespace handling and bad tokens.
func TestParseInts(t *testing.T) {
	got, err := rangemap.ParseInts("  1 -2\t30  ")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -2, 30}, got)

	got, err = rangemap.ParseInts("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = rangemap.ParseInts("1 two 3")
	assert.ErrorIs(t, err, rangemap.ErrMalformedLine)
}

// TestParseTriple converts destination/source/length to an offset interval.
func TestParseTriple(t *testing.T) {
	got, err := rangemap.ParseTriple("52 50 48", "soil")
	require.NoError(t, err)
	assert.Equal(t, interval.Interval[int64]{Start: 50, End: 98, Offset: 2, Tags: []string{"soil"}}, got)

	_, err = rangemap.ParseTriple("1 2")
	assert.ErrorIs(t, err, rangemap.ErrMalformedLine)
	_, err = rangemap.ParseTriple("1 2 0")
	assert.ErrorIs(t, err, interval.ErrEmptyInterval)
}

// TestParseStages reads every section with its name and tags.
func TestParseStages(t *testing.T) {
	stages, err := rangemap.ParseStages(strings.NewReader(almanac))
	require.NoError(t, err)
	require.Len(t, stages, 7)

	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	assert.Equal(t, []string{
		"seed-to-soil", "soil-to-fertilizer", "fertilizer-to-water", "water-to-light",
		"light-to-temperature", "temperature-to-humidity", "humidity-to-location",
	}, names)

	assert.Equal(t, []interval.Interval[int64]{
		{Start: 50, End: 98, Offset: 2, Tags: []string{"seed-to-soil"}},
		{Start: 98, End: 100, Offset: -48, Tags: []string{"seed-to-soil"}},
	}, stages[0].Map.Intervals())
}

// TestParseStages_Errors covers malformed input, overlap and reader failure.
func TestParseStages_Errors(t *testing.T) {
	_, err := rangemap.ParseStages(strings.NewReader("a map:\n50 98\n"))
	require.ErrorIs(t, err, rangemap.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, err = rangemap.ParseStages(strings.NewReader("a map:\nx y z\n"))
	assert.ErrorIs(t, err, rangemap.ErrMalformedLine)

	_, err = rangemap.ParseStages(strings.NewReader("a map:\n\n1 2 0\n"))
	require.ErrorIs(t, err, interval.ErrEmptyInterval)
	assert.Contains(t, err.Error(), "line 3")

	overlapping := "a map:\n0 0 10\n100 5 10\n"
	_, err = rangemap.ParseStages(strings.NewReader(overlapping),
		rangemap.WithSetOptions(interval.WithOverlapPolicy(interval.RejectOverlap)))
	require.ErrorIs(t, err, interval.ErrOverlap)
	assert.Contains(t, err.Error(), `stage "a"`)

	_, err = rangemap.ParseStages(strings.NewReader(overlapping), rangemap.WithSetOptions(nil))
	assert.ErrorIs(t, err, rangemap.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = rangemap.ParseStages(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

// TestParseStages_FirstWinsDefault: the earliest triple owns overlapping keys.
func TestParseStages_FirstWinsDefault(t *testing.T) {
	stages, err := rangemap.ParseStages(strings.NewReader("a map:\n0 0 10\n100 5 10\n"))
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, int64(7), stages[0].Map.Convert(7))
	assert.Equal(t, int64(105), stages[0].Map.Convert(10))
}

// TestParseStages_EmptySection yields an identity stage.
func TestParseStages_EmptySection(t *testing.T) {
	stages, err := rangemap.ParseStages(strings.NewReader("junk before\nfirst map:\nsecond map:\n1 0 1\n"))
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.True(t, stages[0].Map.IsEmpty())
	assert.Equal(t, 1, stages[1].Map.Len())
}

// TestQueries builds point and pair queries.
func TestQueries(t *testing.T) {
	q, err := rangemap.QueryFromPoints([]int64{9, 5, 6, 6})
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval[int64]{{Start: 5, End: 7}, {Start: 9, End: 10}}, q.Intervals())

	q, err = rangemap.QueryFromPairs([]int64{79, 14, 55, 13, 60, 5})
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval[int64]{{Start: 55, End: 68}, {Start: 79, End: 93}}, q.Intervals())

	_, err = rangemap.QueryFromPairs([]int64{1, 2, 3})
	assert.ErrorIs(t, err, rangemap.ErrOddPairs)
	_, err = rangemap.QueryFromPairs([]int64{1, 0})
	assert.ErrorIs(t, err, interval.ErrEmptyInterval)
}

// TestPipeline_ConvertMatchesCompose checks stage-by-stage and composed lookups agree.
func TestPipeline_ConvertMatchesCompose(t *testing.T) {
	p := pipeline(t)
	want := map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		assert.Equal(t, loc, p.Convert(seed), "seed %d", seed)
	}

	composed := p.Compose()
	for x := int64(-10); x < 150; x++ {
		require.Equal(t, p.Convert(x), composed.Convert(x), "x=%d", x)
	}
}

// TestPipeline_Lowest answers point and range queries.
func TestPipeline_Lowest(t *testing.T) {
	p := pipeline(t)

	points, err := rangemap.QueryFromPoints(seeds(t))
	require.NoError(t, err)
	lo, err := p.Lowest(points)
	require.NoError(t, err)
	assert.Equal(t, int64(35), lo)

	ranges, err := rangemap.QueryFromPairs(seeds(t))
	require.NoError(t, err)
	lo, err = p.Lowest(ranges)
	require.NoError(t, err)
	assert.Equal(t, int64(46), lo)

	_, err = p.Lowest(interval.Set[int64]{})
	assert.ErrorIs(t, err, rangemap.ErrEmptyQuery)
}

// TestPipeline_OnStage runs the hook once per stage, only on first Compose.
func TestPipeline_OnStage(t *testing.T) {
	var seen []string
	p := pipeline(t, rangemap.WithOnStage(func(name string, composed interval.Set[int64]) {
		seen = append(seen, name)
		assert.False(t, composed.IsEmpty(), "composition after %s", name)
	}))

	first := p.Compose()
	second := p.Compose()
	assert.Len(t, seen, 7)
	assert.Equal(t, "seed-to-soil", seen[0])
	assert.Equal(t, "humidity-to-location", seen[6])
	assert.Equal(t, first.Intervals(), second.Intervals())
}

// TestPipeline_TagsTrackStages: a composed piece lists the stages that moved it.
func TestPipeline_TagsTrackStages(t *testing.T) {
	p := pipeline(t)
	for _, iv := range p.Compose().Intervals() {
		require.NotEmpty(t, iv.Tags, "every composed piece came from some stage: %v", iv)
		for _, tag := range iv.Tags {
			assert.Contains(t, tag, "-to-")
		}
	}
	assert.Len(t, p.Stages(), 7)
}
