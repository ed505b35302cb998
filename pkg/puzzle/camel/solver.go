package camel

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Solver answers day 7: total winnings, then total winnings with J as a
// joker.
type Solver struct {
	Log *zap.Logger
}

func (Solver) Day() int      { return 7 }
func (Solver) Title() string { return "Camel Cards" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if s.Log != nil {
		s.Log.Debug("parsed hands", zap.Int("hands", len(hands)))
	}

	switch part {
	case puzzle.PartOne:
		return Winnings(hands, false), nil
	case puzzle.PartTwo:
		return Winnings(hands, true), nil
	}
	return 0, fmt.Errorf("camel: unknown %v", part)
}
