// Package cards parses scratchcards ("Card 1: 41 48 | 83 86") and scores
// them.
package cards

import (
	"strconv"
	"strings"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

const kwCard lexer.Keyword = 1

// Grammar is the scratchcard input format.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name:       "cards",
	Keywords:   map[string]lexer.Keyword{"Card": kwCard},
	Separators: []lexer.Separator{lexer.SepColon, lexer.SepPipe},
	Newlines:   true,
})

const (
	winning builder.Bucket = iota + 1
	played
)

// Card is one scratchcard. Numbers keep their input order.
type Card struct {
	ID      int64
	Winning []int64
	Played  []int64
}

// Parse parses a single card line.
func Parse(line string) (Card, error) {
	return builder.Parse(Grammar, line, build)
}

// ParseAll parses one card per non-blank line.
func ParseAll(input string) ([]Card, error) {
	toks, err := lexer.Tokenize(Grammar, input)
	if err != nil {
		return nil, err
	}
	var out []Card
	for _, line := range builder.SplitLines(toks) {
		if len(line) == 0 {
			continue
		}
		c, err := builder.Build(Grammar, line, build)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func build(c *builder.Cursor) (Card, error) {
	if _, err := c.Keyword(kwCard, "'Card'"); err != nil {
		return Card{}, err
	}
	id, err := c.Number("card number")
	if err != nil {
		return Card{}, err
	}
	if err := c.Separator(lexer.SepColon, "':'"); err != nil {
		return Card{}, err
	}

	r := builder.NewRouter(Grammar, winning,
		builder.Transition{From: winning, On: lexer.SepPipe, To: played},
	).RequireNonEmpty()
	if err := r.Route(c); err != nil {
		return Card{}, err
	}
	if r.Active() != played {
		return Card{}, c.Missing("'|'")
	}
	return Card{ID: id, Winning: r.Bucket(winning), Played: r.Bucket(played)}, nil
}

// Matches counts the played numbers that are also winning numbers.
func (c Card) Matches() int {
	win := make(map[int64]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = struct{}{}
	}
	m := 0
	for _, n := range c.Played {
		if _, ok := win[n]; ok {
			m++
		}
	}
	return m
}

// Score is 2^(matches-1), or 0 without a match.
func (c Card) Score() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// String renders the card in its input format.
func (c Card) String() string {
	var b strings.Builder
	b.WriteString("Card ")
	b.WriteString(strconv.FormatInt(c.ID, 10))
	b.WriteByte(':')
	for _, n := range c.Winning {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(n, 10))
	}
	b.WriteString(" |")
	for _, n := range c.Played {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(n, 10))
	}
	return b.String()
}
