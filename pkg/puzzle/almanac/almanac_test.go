package almanac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agenthands/advent/pkg/lexer"
	"github.com/agenthands/advent/pkg/puzzle"
	"github.com/agenthands/advent/pkg/puzzle/almanac"
)

const example = `seeds: 79 14 55 13

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

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	a, err := almanac.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, []int64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)

	m := a.Maps[2]
	assert.Equal(t, "fertilizer-to-water", m.Name())
	assert.Equal(t, almanac.Fertilizer, m.From)
	assert.Equal(t, almanac.Water, m.To)
	require.Len(t, m.Entries, 4)
	assert.Equal(t, almanac.Entry{Dst: 42, Src: 0, Len: 7}, m.Entries[2])
	assert.Equal(t, int64(49), m.Apply(53))

	assert.Equal(t, almanac.Location, a.Maps[6].To)
}

func TestApply(t *testing.T) {
	a, err := almanac.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, int64(81), a.Maps[0].Apply(79))
	assert.Equal(t, int64(14), a.Maps[0].Apply(14))

	for seed, loc := range map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, loc, a.Apply(seed), "seed %d", seed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"Empty", "", lexer.ErrMissingField},
		{"Missing Seeds", "seed-to-soil map:\n1 2 3", lexer.ErrMissingField},
		{"No Maps", "seeds: 1 2", lexer.ErrMissingField},
		{"Unknown Category", "seeds: 1\n\nseed-to-dirt map:\n1 2 3", lexer.ErrSyntax},
		{"Broken Chain", "seeds: 1\n\nsoil-to-water map:\n1 2 3", lexer.ErrUnexpectedToken},
		{"Broken Chain Later", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nwater-to-light map:\n1 2 3", lexer.ErrUnexpectedToken},
		{"Short Range", "seeds: 1\n\nseed-to-soil map:\n1 2", lexer.ErrUnexpectedToken},
		{"Long Range", "seeds: 1\n\nseed-to-soil map:\n1 2 3 4", lexer.ErrUnexpectedToken},
		{"Range Before Map", "seeds: 1\n\n1 2 3", lexer.ErrUnexpectedToken},
		{"Missing Map Keyword", "seeds: 1\n\nseed-to-soil:\n1 2 3", lexer.ErrMissingField},
		{"Missing Dash", "seeds: 1\n\nseed to-soil map:\n1 2 3", lexer.ErrMissingField},
		{"Keyword In Seeds", "seeds: 1 map\n\nseed-to-soil map:\n1 2 3", lexer.ErrUnexpectedToken},
		{"Seeds As Category", "seeds: 1\n\nseeds-to-soil map:\n1 2 3", lexer.ErrUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := almanac.Parse(tt.src)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, a)
		})
	}
}

func TestApplyRange(t *testing.T) {
	m := almanac.Map{
		From:    almanac.Seed,
		To:      almanac.Soil,
		Entries: []almanac.Entry{{Dst: 50, Src: 98, Len: 2}, {Dst: 52, Src: 50, Len: 48}},
	}

	// [45, 101) splits into an identity head, two shifted pieces and an
	// identity tail.
	got := m.ApplyRange(almanac.Interval{Start: 45, End: 101})
	assert.ElementsMatch(t, []almanac.Interval{
		{Start: 50, End: 52},
		{Start: 52, End: 100},
		{Start: 45, End: 50},
		{Start: 100, End: 101},
	}, got)

	// No overlap at all.
	assert.Equal(t, []almanac.Interval{{Start: 0, End: 10}}, m.ApplyRange(almanac.Interval{Start: 0, End: 10}))
}

func TestApplyRangeMatchesApply(t *testing.T) {
	a, err := almanac.Parse(example)
	require.NoError(t, err)

	for seed := int64(0); seed < 100; seed++ {
		ivs := a.ApplyRange(almanac.Interval{Start: seed, End: seed + 1})
		require.Len(t, ivs, 1, "seed %d", seed)
		assert.Equal(t, a.Apply(seed), ivs[0].Start, "seed %d", seed)
	}
}

func TestSeedRanges(t *testing.T) {
	a, err := almanac.Parse(example)
	require.NoError(t, err)

	ivs, err := almanac.SeedRanges(a)
	require.NoError(t, err)
	assert.Equal(t, []almanac.Interval{{Start: 79, End: 93}, {Start: 55, End: 68}}, ivs)

	odd, err := almanac.Parse("seeds: 1 2 3\n\nseed-to-soil map:\n1 2 3")
	require.NoError(t, err)
	_, err = almanac.SeedRanges(odd)
	assert.ErrorIs(t, err, lexer.ErrMissingField)
}

func TestSolver(t *testing.T) {
	ctx := context.Background()

	for _, workers := range []int{0, 1, 8} {
		s := almanac.Solver{Workers: workers}

		got, err := s.Solve(ctx, puzzle.PartOne, example)
		require.NoError(t, err)
		assert.Equal(t, int64(35), got)

		got, err = s.Solve(ctx, puzzle.PartTwo, example)
		require.NoError(t, err)
		assert.Equal(t, int64(46), got, "workers %d", workers)
	}
}

func TestSolverNoSeeds(t *testing.T) {
	src := "seeds:\n\nseed-to-soil map:\n1 2 3"
	_, err := almanac.Solver{}.Solve(context.Background(), puzzle.PartOne, src)
	assert.ErrorIs(t, err, almanac.ErrNoSeeds)

	_, err = almanac.Solver{}.Solve(context.Background(), puzzle.PartTwo, src)
	assert.ErrorIs(t, err, almanac.ErrNoSeeds)

	// Zero-length ranges plant nothing.
	_, err = almanac.Solver{}.Solve(context.Background(), puzzle.PartTwo, "seeds: 5 0\n\nseed-to-soil map:\n1 2 3")
	assert.ErrorIs(t, err, almanac.ErrNoSeeds)
}

func TestSolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := almanac.Solver{Workers: 2}.Solve(ctx, puzzle.PartTwo, example)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoundTrip(t *testing.T) {
	a, err := almanac.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, example, a.String())

	again, err := almanac.Parse(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, again)
}
