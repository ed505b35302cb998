package puzzle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/advent/pkg/puzzle"
)

type stub struct {
	day   int
	title string
}

func (s stub) Day() int      { return s.day }
func (s stub) Title() string { return s.title }
func (s stub) Solve(ctx context.Context, part puzzle.Part, input string) (int64, error) {
	return int64(s.day) * int64(part), nil
}

func TestRegistry(t *testing.T) {
	r, err := puzzle.NewRegistry(stub{6, "six"}, stub{2, "two"}, stub{4, "four"})
	require.NoError(t, err)

	s, err := r.Lookup(4)
	require.NoError(t, err)
	assert.Equal(t, "four", s.Title())

	_, err = r.Lookup(5)
	assert.Error(t, err)

	var days []int
	for _, s := range r.All() {
		days = append(days, s.Day())
	}
	assert.Equal(t, []int{2, 4, 6}, days)

	assert.Error(t, r.Register(stub{2, "again"}))
}

func TestNewRegistryDuplicate(t *testing.T) {
	_, err := puzzle.NewRegistry(stub{1, "a"}, stub{1, "b"})
	assert.Error(t, err)
}

func TestParsePart(t *testing.T) {
	p, err := puzzle.ParsePart(2)
	require.NoError(t, err)
	assert.Equal(t, puzzle.PartTwo, p)
	assert.Equal(t, "part 2", p.String())

	_, err = puzzle.ParsePart(3)
	assert.Error(t, err)
}
