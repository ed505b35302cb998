// Package cubes parses cube game records such as
//
//	Game 2: 3 red, 1 blue, 2 green; 1 blue, 9 green; 1 red, 10 green
//
// and checks them against a bag of cubes.
package cubes

import (
	"strconv"
	"strings"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

const (
	kwGame lexer.Keyword = iota + 1
	kwRed
	kwGreen
	kwBlue
)

// Grammar is the cube game input format. Colour names are matched
// case-insensitively.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name: "cubes",
	Keywords: map[string]lexer.Keyword{
		"Game":  kwGame,
		"red":   kwRed,
		"green": kwGreen,
		"blue":  kwBlue,
	},
	FoldCase:   true,
	Separators: []lexer.Separator{lexer.SepColon, lexer.SepSemicolon, lexer.SepComma},
	Newlines:   true,
})

// Color of a cube.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{Red: "red", Green: "green", Blue: "blue"}

func (c Color) String() string { return colorNames[c] }

func colorOf(kw lexer.Keyword) (Color, bool) {
	switch kw {
	case kwRed:
		return Red, true
	case kwGreen:
		return Green, true
	case kwBlue:
		return Blue, true
	}
	return 0, false
}

// Cubes is one "<count> <color>" mention.
type Cubes struct {
	Count int64
	Color Color
}

// Reveal is one handful of cubes, in mention order.
type Reveal []Cubes

// Count returns how many cubes of color the reveal shows. Colours the
// reveal does not mention count as 0.
func (r Reveal) Count(color Color) int64 {
	for _, c := range r {
		if c.Color == color {
			return c.Count
		}
	}
	return 0
}

// Game is one game record.
type Game struct {
	ID      int64
	Reveals []Reveal
}

// Parse parses a single game line.
func Parse(line string) (Game, error) {
	return builder.Parse(Grammar, line, build)
}

// ParseAll parses one game per non-blank line.
func ParseAll(input string) ([]Game, error) {
	toks, err := lexer.Tokenize(Grammar, input)
	if err != nil {
		return nil, err
	}
	var out []Game
	for _, line := range builder.SplitLines(toks) {
		if len(line) == 0 {
			continue
		}
		g, err := builder.Build(Grammar, line, build)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

type revealState uint8

const (
	wantCount revealState = iota
	wantColor
	afterColor
)

func build(c *builder.Cursor) (Game, error) {
	if _, err := c.Keyword(kwGame, "'Game'"); err != nil {
		return Game{}, err
	}
	id, err := c.Number("game number")
	if err != nil {
		return Game{}, err
	}
	if err := c.Separator(lexer.SepColon, "':'"); err != nil {
		return Game{}, err
	}

	var (
		reveals []Reveal
		current Reveal
		count   int64
		st      = wantCount
	)
	for {
		tok, ok := c.Next()
		if !ok {
			break
		}
		switch st {
		case wantCount:
			if tok.Kind != lexer.KindNumber {
				return Game{}, c.Unexpected(tok, "expected a cube count")
			}
			count = tok.Value
			st = wantColor

		case wantColor:
			color, ok := colorOf(tok.Keyword)
			if tok.Kind != lexer.KindKeyword || !ok {
				return Game{}, c.Unexpected(tok, "expected a colour")
			}
			for _, seen := range current {
				if seen.Color == color {
					return Game{}, c.Unexpected(tok, "%s mentioned twice in one reveal", color)
				}
			}
			current = append(current, Cubes{Count: count, Color: color})
			st = afterColor

		case afterColor:
			switch {
			case tok.Is(lexer.SepComma):
			case tok.Is(lexer.SepSemicolon):
				reveals = append(reveals, current)
				current = nil
			default:
				return Game{}, c.Unexpected(tok, "expected ',' or ';'")
			}
			st = wantCount
		}
	}

	switch st {
	case wantCount:
		return Game{}, c.Missing("a cube count")
	case wantColor:
		return Game{}, c.Missing("a colour")
	}
	reveals = append(reveals, current)
	return Game{ID: id, Reveals: reveals}, nil
}

// Max returns the largest count of color shown in any reveal.
func (g Game) Max(color Color) int64 {
	var m int64
	for _, r := range g.Reveals {
		if n := r.Count(color); n > m {
			m = n
		}
	}
	return m
}

// Bag is the number of cubes of each colour in the bag.
type Bag struct {
	Red, Green, Blue int64
}

// DefaultBag is the bag the puzzle asks about.
var DefaultBag = Bag{Red: 12, Green: 13, Blue: 14}

// Possible reports whether every reveal fits within the bag.
func (g Game) Possible(b Bag) bool {
	return g.Max(Red) <= b.Red && g.Max(Green) <= b.Green && g.Max(Blue) <= b.Blue
}

// Power is the product of the per-colour maxima, i.e. the size of the
// smallest bag that makes the game possible.
func (g Game) Power() int64 {
	return g.Max(Red) * g.Max(Green) * g.Max(Blue)
}

// String renders the game in its input format.
func (g Game) String() string {
	var b strings.Builder
	b.WriteString("Game ")
	b.WriteString(strconv.FormatInt(g.ID, 10))
	b.WriteByte(':')
	for i, r := range g.Reveals {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, c := range r {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(c.Count, 10))
			b.WriteByte(' ')
			b.WriteString(c.Color.String())
		}
	}
	return b.String()
}
