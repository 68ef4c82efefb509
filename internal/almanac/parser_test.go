package almanac

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAlmanac = `seeds: 79 14 55 13

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

func TestParse_Sample(t *testing.T) {
	a, err := Parse(sampleAlmanac)
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)

	stages := a.Pipeline.Stages()
	require.Len(t, stages, 7)
	assert.Equal(t, "seed-to-soil", stages[0].Name())
	assert.Equal(t, "humidity-to-location", stages[6].Name())
	assert.Equal(t, uint64(50), stages[0].Entries()[0].SourceStart)

	locations := map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range locations {
		assert.Equal(t, want, a.Pipeline.Resolve(seed), "seed %d", seed)
	}
	assert.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, a.Pipeline.Trace(79))

	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []Range{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, ranges)

	var resolved []Range
	for _, r := range ranges {
		resolved = append(resolved, a.Pipeline.ResolveRange(r)...)
	}
	lowest, err := MinimumDestination(resolved)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), lowest)
}

func TestParse_EmptyBlockIsIdentity(t *testing.T) {
	a, err := Parse("seeds: 1 2\n\na-to-b map:\n\nb-to-c map:\n5 1 1\n")
	require.NoError(t, err)

	require.Len(t, a.Pipeline.Stages(), 2)
	assert.Empty(t, a.Pipeline.Stages()[0].Entries())
	assert.Equal(t, uint64(5), a.Pipeline.Resolve(1))
	assert.Equal(t, uint64(2), a.Pipeline.Resolve(2))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "empty", input: "", wantLine: 0},
		{name: "no seeds", input: "seed-to-soil map:\n1 2 3\n", wantLine: 1},
		{name: "bad seed", input: "seeds: 1 x 3\n", wantLine: 1},
		{name: "duplicate seeds", input: "seeds: 1\nseeds: 2\n", wantLine: 2},
		{name: "entry before header", input: "seeds: 1\n\n1 2 3\n", wantLine: 3},
		{name: "bad header", input: "seeds: 1\n\nseed soil map:\n", wantLine: 3},
		{name: "two numbers", input: "seeds: 1\n\na-to-b map:\n1 2\n", wantLine: 4},
		{name: "bad number", input: "seeds: 1\n\na-to-b map:\n1 2 -3\n", wantLine: 4},
		{name: "zero length", input: "seeds: 1\n\na-to-b map:\n1 2 0\n", wantLine: 4},
		{name: "broken chain", input: "seeds: 1\n\na-to-b map:\n1 2 3\n\nc-to-d map:\n", wantLine: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parse.ErrMalformedInput)

			var perr *parse.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestSeedRanges_OddCount(t *testing.T) {
	a := &Almanac{Seeds: []uint64{1, 2, 3}}

	_, err := a.SeedRanges()
	assert.ErrorIs(t, err, parse.ErrMalformedInput)
}
