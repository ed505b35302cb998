package report_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/advent/internal/report"
	"github.com/agenthands/advent/pkg/puzzle"
)

func TestTable(t *testing.T) {
	out := report.Table([]report.Result{
		{Day: 3, Title: "Gear Ratios", Part: puzzle.PartOne, Answer: 4361, Elapsed: time.Millisecond},
		{Day: 4, Title: "Scratchcards", Part: puzzle.PartTwo, Err: errors.New("cards: boom")},
	})

	for _, want := range []string{"Day", "Answer", "Gear Ratios", "4361", "1ms", "Scratchcards", "cards: boom"} {
		assert.Contains(t, out, want)
	}

	// Rows follow the header in input order.
	assert.Less(t, strings.Index(out, "Gear Ratios"), strings.Index(out, "Scratchcards"))
	assert.Less(t, strings.Index(out, "Answer"), strings.Index(out, "Gear Ratios"))
}

func TestTableEmpty(t *testing.T) {
	out := report.Table(nil)
	assert.Contains(t, out, "Title")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 solved", report.Summary([]report.Result{{}, {}}))
	assert.Contains(t, report.Summary([]report.Result{{}, {Err: errors.New("x")}}), "1 failed")
}
