// Package report renders solver results for the terminal.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/advent/pkg/puzzle"
)

// Result is the outcome of one solver part.
type Result struct {
	Day     int
	Title   string
	Part    puzzle.Part
	Answer  int64
	Elapsed time.Duration
	Err     error
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	cellStyle = lipgloss.NewStyle().PaddingRight(2)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))
)

var headers = []string{"Day", "Title", "Part", "Answer", "Time"}

// Table renders results as aligned columns with a header row.
func Table(results []Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		answer := answerStyle.Render(strconv.FormatInt(r.Answer, 10))
		if r.Err != nil {
			answer = errorStyle.Render(r.Err.Error())
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Day),
			r.Title,
			strconv.Itoa(int(r.Part)),
			answer,
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(headers, widths, headerStyle))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, lipgloss.NewStyle()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellStyle.Width(widths[i] + 2).Render(c)
	}
	return style.Render(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, out...), " "))
}

// Summary is a one-line count of solved and failed parts.
func Summary(results []Result) string {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	line := strconv.Itoa(len(results)-failed) + " solved"
	if failed > 0 {
		line += ", " + errorStyle.Render(strconv.Itoa(failed)+" failed")
	}
	return line
}
