package cards

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Solver answers day 4: the sum of card scores, then the size of the
// deck after copies cascade.
type Solver struct {
	Log *zap.Logger
}

func (Solver) Day() int      { return 4 }
func (Solver) Title() string { return "Scratchcards" }

func (s Solver) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	cards, err := ParseAll(input)
	if err != nil {
		return 0, err
	}
	if s.Log != nil {
		s.Log.Debug("parsed cards", zap.Int("cards", len(cards)))
	}

	switch part {
	case puzzle.PartOne:
		var sum int64
		for _, c := range cards {
			sum += c.Score()
		}
		return sum, nil
	case puzzle.PartTwo:
		d := NewDeck(cards)
		d.ProcessWins()
		return d.Total(), nil
	}
	return 0, fmt.Errorf("cards: unknown %v", part)
}
