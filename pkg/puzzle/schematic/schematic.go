// Package schematic reads engine schematics: a grid of numbers, symbols
// and '.' blanks, where numbers touching a symbol are part numbers.
package schematic

import (
	"bytes"
	"fmt"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

// Grammar is the schematic input format. Every punctuation character
// other than '.' is a symbol.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name:     "schematic",
	Blank:    '.',
	Marks:    true,
	Newlines: true,
})

// Gear symbol.
const Gear = '*'

// Number is a run of digits on the grid. Coordinates are signed so that
// neighbour arithmetic at row or column 0 cannot wrap.
type Number struct {
	Value    int64
	Row, Col int
	Len      int
}

// Symbol is a single non-digit, non-blank cell.
type Symbol struct {
	Char     byte
	Row, Col int
}

type cell struct{ row, col int }

// Schematic holds the tokens of a grid in reading order.
type Schematic struct {
	Numbers []Number
	Symbols []Symbol

	at map[cell]int // symbol index by position
}

// Parse reads a schematic grid.
func Parse(input string) (*Schematic, error) {
	return builder.Parse(Grammar, input, build)
}

func build(c *builder.Cursor) (*Schematic, error) {
	s := &Schematic{at: make(map[cell]int)}
	for {
		tok, ok := c.Next()
		if !ok {
			return s, nil
		}
		switch tok.Kind {
		case lexer.KindNumber:
			s.Numbers = append(s.Numbers, Number{Value: tok.Value, Row: tok.Line, Col: tok.Col, Len: tok.Len()})
		case lexer.KindMark:
			s.at[cell{tok.Line, tok.Col}] = len(s.Symbols)
			s.Symbols = append(s.Symbols, Symbol{Char: tok.Mark, Row: tok.Line, Col: tok.Col})
		case lexer.KindSeparator:
			// Only newlines reach here; positions already carry the row.
		default:
			return nil, c.Unexpected(tok, "%v in a schematic", tok)
		}
	}
}

// neighbours returns the indexes of the symbols touching n, including
// diagonally.
func (s *Schematic) neighbours(n Number) []int {
	var out []int
	for row := n.Row - 1; row <= n.Row+1; row++ {
		for col := n.Col - 1; col <= n.Col+n.Len; col++ {
			if i, ok := s.at[cell{row, col}]; ok {
				out = append(out, i)
			}
		}
	}
	return out
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range s.Numbers {
		if len(s.neighbours(n)) > 0 {
			out = append(out, n)
		}
	}
	return out
}

// GearRatios returns, for every '*' touching exactly two part numbers,
// the product of those numbers, in symbol order.
func (s *Schematic) GearRatios() []int64 {
	touching := make(map[int][]int64)
	for _, n := range s.Numbers {
		for _, i := range s.neighbours(n) {
			if s.Symbols[i].Char == Gear {
				touching[i] = append(touching[i], n.Value)
			}
		}
	}
	var out []int64
	for i, sym := range s.Symbols {
		if sym.Char != Gear {
			continue
		}
		if parts := touching[i]; len(parts) == 2 {
			out = append(out, parts[0]*parts[1])
		}
	}
	return out
}

// String renders the grid with '.' in every empty cell.
func (s *Schematic) String() string {
	rows, cols := 0, 0
	grow := func(row, end int) {
		rows = max(rows, row+1)
		cols = max(cols, end)
	}
	for _, n := range s.Numbers {
		grow(n.Row, n.Col+n.Len)
	}
	for _, sym := range s.Symbols {
		grow(sym.Row, sym.Col+1)
	}

	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = bytes.Repeat([]byte{'.'}, cols)
	}
	for _, n := range s.Numbers {
		copy(grid[n.Row][n.Col:], fmt.Sprintf("%0*d", n.Len, n.Value))
	}
	for _, sym := range s.Symbols {
		grid[sym.Row][sym.Col] = sym.Char
	}
	return string(bytes.Join(grid, []byte{'\n'}))
}
