package schematic_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/advent/pkg/lexer"
	"github.com/agenthands/advent/pkg/puzzle"
	"github.com/agenthands/advent/pkg/puzzle/schematic"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestParse(t *testing.T) {
	sc, err := schematic.Parse(example)
	require.NoError(t, err)

	assert.Len(t, sc.Numbers, 10)
	assert.Len(t, sc.Symbols, 6)
	assert.Equal(t, schematic.Number{Value: 617, Row: 4, Col: 0, Len: 3}, sc.Numbers[4])
	assert.Equal(t, schematic.Symbol{Char: '*', Row: 4, Col: 3}, sc.Symbols[2])
}

func TestPartNumbers(t *testing.T) {
	sc, err := schematic.Parse(example)
	require.NoError(t, err)

	var values []int64
	for _, n := range sc.PartNumbers() {
		values = append(values, n.Value)
	}
	assert.Equal(t, []int64{467, 35, 633, 617, 592, 755, 664, 598}, values)
}

func TestGearRatios(t *testing.T) {
	sc, err := schematic.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, []int64{16345, 451490}, sc.GearRatios())
}

func TestEdgeCoordinates(t *testing.T) {
	// Symbols at row and column 0 touch numbers diagonally.
	sc, err := schematic.Parse("*..\n.12\n3..\n.#.")
	require.NoError(t, err)

	var values []int64
	for _, n := range sc.PartNumbers() {
		values = append(values, n.Value)
	}
	assert.Equal(t, []int64{12, 3}, values)
	assert.Empty(t, sc.GearRatios())
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	sc, err := schematic.Parse("1.2\n.*.\n3..")
	require.NoError(t, err)
	assert.Empty(t, sc.GearRatios())

	sc, err = schematic.Parse("1.2\n.*.")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, sc.GearRatios())
}

func TestParseRejectsLetters(t *testing.T) {
	sc, err := schematic.Parse("12.\n.a*")
	assert.ErrorIs(t, err, lexer.ErrSyntax)
	assert.Nil(t, sc)
}

func TestRoundTrip(t *testing.T) {
	sc, err := schematic.Parse(example)
	require.NoError(t, err)

	// Trailing blank columns are not recorded, so the grid is as wide as
	// its rightmost token.
	out := sc.String()
	assert.Equal(t, "467..114.", strings.SplitN(out, "\n", 2)[0])

	again, err := schematic.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, sc.Numbers, again.Numbers)
	assert.Equal(t, sc.Symbols, again.Symbols)
}

func TestSolver(t *testing.T) {
	ctx := context.Background()

	got, err := schematic.Solver{}.Solve(ctx, puzzle.PartOne, example)
	require.NoError(t, err)
	assert.Equal(t, int64(4361), got)

	got, err = schematic.Solver{}.Solve(ctx, puzzle.PartTwo, example)
	require.NoError(t, err)
	assert.Equal(t, int64(467835), got)
}
