package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cardsInput = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`
	racesInput = "Time:      7  15   30\nDistance:  9  40  200\n"
)

// workspace writes a config file pointing at a fresh input directory and
// returns the config path and the directory.
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	inputs := filepath.Join(dir, "inputs")
	require.NoError(t, os.Mkdir(inputs, 0755))

	cfg := "input:\n  dir: " + inputs + "\nlogging:\n  level: error\n"
	path := filepath.Join(dir, "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path, inputs
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	cfg, _ := workspace(t)
	out, err := execute(t, "list", "--config", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Cube Conundrum")
	assert.Contains(t, lines[5], "Camel Cards")
}

func TestSolve(t *testing.T) {
	cfg, inputs := workspace(t)
	path := filepath.Join(inputs, "day04.txt")
	require.NoError(t, os.WriteFile(path, []byte(cardsInput), 0644))

	out, err := execute(t, "solve", "--config", cfg, "--day", "4")
	require.NoError(t, err)
	assert.Equal(t, "day 4 part 1: 13\nday 4 part 2: 30\n", out)

	out, err = execute(t, "solve", "--config", cfg, "--day", "4", "--part", "2", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "day 4 part 2: 30\n", out)
}

func TestSolveErrors(t *testing.T) {
	cfg, inputs := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day06.txt"), []byte("Time: 7\n"), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{"unknown day", []string{"--day", "25"}},
		{"bad part", []string{"--day", "6", "--part", "3"}},
		{"missing input", []string{"--day", "4"}},
		{"parse error", []string{"--day", "6"}},
		{"no day", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"solve", "--config", cfg}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestTokens(t *testing.T) {
	cfg, inputs := workspace(t)
	path := filepath.Join(inputs, "races.txt")
	require.NoError(t, os.WriteFile(path, []byte(racesInput), 0644))

	out, err := execute(t, "tokens", "--config", cfg, "--grammar", "races", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1:1\tKeyword(Time)\n1:5\tSeparator(Colon)\n1:12\tNumber(7)\n"), out)

	out, err = execute(t, "tokens", "--config", cfg, "--grammar", "races", "--pretty", path)
	require.NoError(t, err)
	assert.Equal(t, "Time : 7 15 30\nDistance : 9 40 200\n", out)

	_, err = execute(t, "tokens", "--config", cfg, "--grammar", "nope", path)
	assert.ErrorContains(t, err, "unknown grammar")
}

func TestAll(t *testing.T) {
	cfg, inputs := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day04.txt"), []byte(cardsInput), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day06.txt"), []byte(racesInput), 0644))

	out, err := execute(t, "all", "--config", cfg)
	require.NoError(t, err)
	for _, want := range []string{"Scratchcards", "13", "30", "Wait For It", "288", "71503", "4 solved"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Camel Cards")
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\n"), 0644))

	_, err := execute(t, "list", "--config", path)
	assert.ErrorContains(t, err, "workers")
}
