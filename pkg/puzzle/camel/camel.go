// Package camel ranks Camel Cards hands: five cards and a bid per line.
package camel

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

// Faces lists the card labels from weakest to strongest.
const Faces = "23456789TJQKA"

// Grammar is the hand list format. A hand of letters and digits is a
// word; a hand of digits only scans as a number and keeps its text.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name:     "camel",
	Words:    Faces,
	Newlines: true,
})

// Face is a card label's index in Faces.
type Face uint8

const Jack Face = 9

func (f Face) String() string { return Faces[f : f+1] }

// Type is the class of a hand, weakest first.
type Type uint8

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var typeNames = [...]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPair:      "two pair",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (t Type) String() string { return typeNames[t] }

// Hand is one line of input.
type Hand struct {
	Cards [5]Face
	Bid   int64
}

// Type classifies the hand. With jokers, every J joins the largest group
// of other cards, which is always the best substitution.
func (h Hand) Type(jokers bool) Type {
	var counts [len(Faces)]int
	wild := 0
	for _, f := range h.Cards {
		if jokers && f == Jack {
			wild++
			continue
		}
		counts[f]++
	}
	slices.SortFunc(counts[:], func(a, b int) int { return b - a })
	counts[0] += wild

	switch {
	case counts[0] == 5:
		return FiveOfAKind
	case counts[0] == 4:
		return FourOfAKind
	case counts[0] == 3 && counts[1] == 2:
		return FullHouse
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return OnePair
	}
	return HighCard
}

func strength(f Face, jokers bool) int {
	if jokers && f == Jack {
		return -1
	}
	return int(f)
}

// Compare orders hands by type, then card by card from the left.
func Compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Type(jokers), b.Type(jokers)); c != 0 {
		return c
	}
	for i := range a.Cards {
		if c := cmp.Compare(strength(a.Cards[i], jokers), strength(b.Cards[i], jokers)); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings ranks the hands weakest first and sums rank times bid. The
// input slice is not modified.
func Winnings(hands []Hand, jokers bool) int64 {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b Hand) int { return Compare(a, b, jokers) })
	var total int64
	for i, h := range ranked {
		total += int64(i+1) * h.Bid
	}
	return total
}

// Parse reads one hand per line. Blank lines are skipped.
func Parse(input string) ([]Hand, error) {
	return builder.Parse(Grammar, input, build)
}

func build(c *builder.Cursor) ([]Hand, error) {
	var hands []Hand
	for _, line := range builder.SplitLines(c.Rest()) {
		if len(line) == 0 {
			continue
		}
		h, err := builder.Build(Grammar, line, hand)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func hand(c *builder.Cursor) (Hand, error) {
	tok, ok := c.Next()
	if !ok {
		return Hand{}, c.Missing("a hand")
	}
	if tok.Kind != lexer.KindWord && tok.Kind != lexer.KindNumber {
		return Hand{}, c.Unexpected(tok, "expected a hand, got %v", tok)
	}
	if len(tok.Text) != 5 {
		return Hand{}, c.Unexpected(tok, "hand %q has %d cards", tok.Text, len(tok.Text))
	}

	var h Hand
	for i := 0; i < 5; i++ {
		idx := strings.IndexByte(Faces, tok.Text[i])
		if idx < 0 {
			return Hand{}, c.Unexpected(tok, "no card %q", tok.Text[i])
		}
		h.Cards[i] = Face(idx)
	}

	bid, err := c.Number("a bid")
	if err != nil {
		return Hand{}, err
	}
	h.Bid = bid
	return h, nil
}

// String renders the hand as an input line.
func (h Hand) String() string {
	var b strings.Builder
	for _, f := range h.Cards {
		b.WriteString(f.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(h.Bid, 10))
	return b.String()
}
