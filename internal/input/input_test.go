package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/advent/internal/input"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a\n", "a"},
		{"a\r\nb\r\n", "a\nb"},
		{"a\n\n", "a\n"},
		{"a", "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, input.Normalize(tt.in), "%q", tt.in)
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day04.txt")
	require.NoError(t, os.WriteFile(path, []byte("Card 1: 1 | 1\r\n"), 0644))

	got, err := input.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Card 1: 1 | 1", got)

	_, err = input.Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
