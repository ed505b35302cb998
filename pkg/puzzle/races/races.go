// Package races parses boat race sheets
//
//	Time:      7  15   30
//	Distance:  9  40  200
//
// and counts the ways to beat each record.
package races

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

const (
	kwTime lexer.Keyword = iota + 1
	kwDistance
)

// Grammar is the race sheet input format.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name: "races",
	Keywords: map[string]lexer.Keyword{
		"Time":     kwTime,
		"Distance": kwDistance,
	},
	Separators: []lexer.Separator{lexer.SepColon},
	Newlines:   true,
})

const (
	durations builder.Bucket = iota + 1
	distances
)

// Race is a race duration and the record distance to beat.
type Race struct {
	Duration int64
	Distance int64
}

// Parse reads a race sheet. Each line starts with the keyword naming the
// field its numbers belong to; the two lines are zipped column-wise.
func Parse(input string) ([]Race, error) {
	return builder.Parse(Grammar, input, build)
}

func build(c *builder.Cursor) ([]Race, error) {
	r := builder.NewRouter(Grammar, builder.NoBucket)
	var heads [3]lexer.Token
	var seen [3]bool

	for _, line := range builder.SplitLines(c.Rest()) {
		if len(line) == 0 {
			continue
		}
		lc := builder.NewCursor(Grammar, line)
		head, err := lc.AnyKeyword("'Time' or 'Distance'")
		if err != nil {
			return nil, err
		}
		b := durations
		if head.Keyword == kwDistance {
			b = distances
		}
		if seen[b] {
			return nil, lc.Unexpected(head, "second %s line", head.Text)
		}
		seen[b], heads[b] = true, head
		if err := lc.Separator(lexer.SepColon, "':'"); err != nil {
			return nil, err
		}

		r.Select(b)
		if err := r.Route(lc); err != nil {
			return nil, err
		}
	}

	if !seen[durations] {
		return nil, c.Missing("a 'Time' line")
	}
	if !seen[distances] {
		return nil, c.Missing("a 'Distance' line")
	}
	ts, ds := r.Bucket(durations), r.Bucket(distances)
	if len(ts) != len(ds) {
		return nil, c.Unexpected(heads[distances], "%d times but %d distances", len(ts), len(ds))
	}

	out := make([]Race, len(ts))
	for i := range ts {
		out[i] = Race{Duration: ts[i], Distance: ds[i]}
	}
	return out, nil
}

// Kern merges the races into one by concatenating the decimal digits of
// every duration and every distance, as if the spaces on the sheet were
// bad kerning.
func Kern(races []Race) (Race, error) {
	if len(races) == 0 {
		return Race{}, fmt.Errorf("races: nothing to kern: %w", lexer.ErrMissingField)
	}
	var t, d strings.Builder
	for _, r := range races {
		t.WriteString(strconv.FormatInt(r.Duration, 10))
		d.WriteString(strconv.FormatInt(r.Distance, 10))
	}
	dur, err := strconv.ParseInt(t.String(), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("races: kerned time %s: %w", t.String(), lexer.ErrNumberOutOfRange)
	}
	dist, err := strconv.ParseInt(d.String(), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("races: kerned distance %s: %w", d.String(), lexer.ErrNumberOutOfRange)
	}
	return Race{Duration: dur, Distance: dist}, nil
}

// beats reports whether holding the button for hold ms beats the record.
// The travelled distance is computed in 128 bits.
func (r Race) beats(hold int64) bool {
	hi, lo := bits.Mul64(uint64(hold), uint64(r.Duration-hold))
	return hi > 0 || lo > uint64(r.Distance)
}

// Limits returns the shortest and longest winning hold times. ok is false
// when no hold time beats the record.
func (r Race) Limits() (lo, hi int64, ok bool) {
	mid := r.Duration / 2
	if !r.beats(mid) {
		return 0, 0, false
	}
	// Distance grows monotonically with hold time up to mid.
	lo, hi = 0, mid
	for lo < hi {
		m := lo + (hi-lo)/2
		if r.beats(m) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo, r.Duration - lo, true
}

// Wins counts the hold times that beat the record.
func (r Race) Wins() int64 {
	lo, hi, ok := r.Limits()
	if !ok {
		return 0
	}
	return hi - lo + 1
}

// Format renders races back into a race sheet.
func Format(races []Race) string {
	var t, d strings.Builder
	t.WriteString("Time:")
	d.WriteString("Distance:")
	for _, r := range races {
		fmt.Fprintf(&t, " %d", r.Duration)
		fmt.Fprintf(&d, " %d", r.Distance)
	}
	return t.String() + "\n" + d.String()
}
