package schematic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Solver answers day 3: the sum of part numbers, then the sum of gear
// ratios.
type Solver struct {
	Log *zap.Logger
}

func (Solver) Day() int      { return 3 }
func (Solver) Title() string { return "Gear Ratios" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	sc, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if s.Log != nil {
		s.Log.Debug("parsed schematic",
			zap.Int("numbers", len(sc.Numbers)),
			zap.Int("symbols", len(sc.Symbols)))
	}

	var sum int64
	switch part {
	case puzzle.PartOne:
		for _, n := range sc.PartNumbers() {
			sum += n.Value
		}
	case puzzle.PartTwo:
		for _, r := range sc.GearRatios() {
			sum += r
		}
	default:
		return 0, fmt.Errorf("schematic: unknown %v", part)
	}
	return sum, nil
}
