package races

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Solver answers day 6: the product of the ways to win each race, then
// the ways to win the single kerned race.
type Solver struct {
	Log *zap.Logger
}

func (Solver) Day() int      { return 6 }
func (Solver) Title() string { return "Wait For It" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}

	switch part {
	case puzzle.PartOne:
		product := int64(1)
		for _, r := range races {
			product *= r.Wins()
		}
		return product, nil
	case puzzle.PartTwo:
		r, err := Kern(races)
		if err != nil {
			return 0, err
		}
		if s.Log != nil {
			s.Log.Debug("kerned race", zap.Int64("time", r.Duration), zap.Int64("distance", r.Distance))
		}
		return r.Wins(), nil
	}
	return 0, fmt.Errorf("races: unknown %v", part)
}
