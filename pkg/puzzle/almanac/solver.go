package almanac

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/advent/pkg/lexer"
	"github.com/agenthands/advent/pkg/puzzle"
)

// ErrNoSeeds is returned when no seed reaches a location.
var ErrNoSeeds = errors.New("no seeds to plant")

// DefaultWorkers bounds the seed range fan-out when Solver.Workers is unset.
const DefaultWorkers = 4

// Solver answers day 5: the lowest location of any seed, then the lowest
// location when the seed line lists (start, length) ranges.
type Solver struct {
	Workers int
	Log     *zap.Logger
}

func (Solver) Day() int      { return 5 }
func (Solver) Title() string { return "If You Give A Seed A Fertilizer" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	s.logger().Debug("parsed almanac",
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("maps", len(a.Maps)))

	switch part {
	case puzzle.PartOne:
		return LowestLocation(a)
	case puzzle.PartTwo:
		return s.LowestRangeLocation(ctx, a)
	default:
		return 0, fmt.Errorf("almanac: unknown %v", part)
	}
}

func (s Solver) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// LowestLocation maps every seed through the chain and returns the
// smallest result.
func LowestLocation(a *Almanac) (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	best := a.Apply(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		best = min(best, a.Apply(seed))
	}
	return best, nil
}

// SeedRanges pairs up the seed line as (start, length) ranges.
func SeedRanges(a *Almanac) ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: %d seed numbers do not pair into ranges: %w",
			len(a.Seeds), lexer.ErrMissingField)
	}
	ivs := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return ivs, nil
}

// LowestRangeLocation maps every seed range concurrently, one task per
// range, and reduces to the smallest location. The first failing task
// cancels the rest.
func (s Solver) LowestRangeLocation(ctx context.Context, a *Almanac) (int64, error) {
	ivs, err := SeedRanges(a)
	if err != nil {
		return 0, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	type result struct {
		loc int64
		ok  bool
	}
	results := make([]result, len(ivs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, iv := range ivs {
		i, iv := i, iv
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			loc, ok := lowest(a.ApplyRange(iv))
			results[i] = result{loc, ok}
			s.logger().Debug("seed range mapped",
				zap.Int64("start", iv.Start),
				zap.Int64("end", iv.End),
				zap.Int64("lowest", loc))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var best int64
	found := false
	for _, r := range results {
		if r.ok && (!found || r.loc < best) {
			best, found = r.loc, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return best, nil
}
