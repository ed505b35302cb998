package cubes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Solver answers day 2: the sum of the IDs of possible games, then the
// sum of game powers.
type Solver struct {
	Bag Bag // zero means DefaultBag
	Log *zap.Logger
}

func (Solver) Day() int      { return 2 }
func (Solver) Title() string { return "Cube Conundrum" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	games, err := ParseAll(input)
	if err != nil {
		return 0, err
	}
	bag := s.Bag
	if bag == (Bag{}) {
		bag = DefaultBag
	}

	var sum int64
	switch part {
	case puzzle.PartOne:
		for _, g := range games {
			if g.Possible(bag) {
				sum += g.ID
			} else if s.Log != nil {
				s.Log.Debug("impossible game", zap.Int64("game", g.ID))
			}
		}
	case puzzle.PartTwo:
		for _, g := range games {
			sum += g.Power()
		}
	default:
		return 0, fmt.Errorf("cubes: unknown %v", part)
	}
	return sum, nil
}
