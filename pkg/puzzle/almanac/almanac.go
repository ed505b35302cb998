// Package almanac reads seed almanacs: a seed list followed by a chain of
// category maps ("seed-to-soil map:") that translate numbers from one
// category to the next.
package almanac

import (
	"strconv"
	"strings"

	"github.com/agenthands/advent/pkg/builder"
	"github.com/agenthands/advent/pkg/lexer"
)

// Category is a kind of number tracked by the almanac.
type Category uint8

const (
	Seed Category = iota + 1
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

var categoryNames = map[Category]string{
	Seed:        "seed",
	Soil:        "soil",
	Fertilizer:  "fertilizer",
	Water:       "water",
	Light:       "light",
	Temperature: "temperature",
	Humidity:    "humidity",
	Location:    "location",
}

func (c Category) String() string { return categoryNames[c] }

const (
	kwSeeds lexer.Keyword = iota + 100
	kwMap
	kwTo
)

// Grammar is the almanac input format. Category keywords share their
// numeric values with Category.
var Grammar = lexer.MustCompile(&lexer.Grammar{
	Name:       "almanac",
	Keywords:   keywords(),
	Separators: []lexer.Separator{lexer.SepColon, lexer.SepDash},
	Newlines:   true,
})

func keywords() map[string]lexer.Keyword {
	kw := map[string]lexer.Keyword{
		"seeds": kwSeeds,
		"map":   kwMap,
		"to":    kwTo,
	}
	for c, name := range categoryNames {
		kw[name] = lexer.Keyword(c)
	}
	return kw
}

// Entry maps [Src, Src+Len) onto [Dst, Dst+Len).
type Entry struct {
	Dst, Src, Len int64
}

// Map translates numbers of category From into category To. Numbers
// outside every entry map to themselves.
type Map struct {
	From, To Category
	Entries  []Entry
}

// Name is the map's header name, e.g. "seed-to-soil".
func (m Map) Name() string {
	return m.From.String() + "-to-" + m.To.String()
}

// Apply translates v using the first entry whose source range holds it.
func (m Map) Apply(v int64) int64 {
	for _, e := range m.Entries {
		if v >= e.Src && v < e.Src+e.Len {
			return v + e.Dst - e.Src
		}
	}
	return v
}

// Almanac is a parsed almanac.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}

// Apply runs v through every map of the chain.
func (a *Almanac) Apply(v int64) int64 {
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// Parse reads an almanac.
func Parse(input string) (*Almanac, error) {
	return builder.Parse(Grammar, input, build)
}

type blockState uint8

const (
	wantSeeds blockState = iota
	betweenMaps
	inMap
)

func build(c *builder.Cursor) (*Almanac, error) {
	a := &Almanac{}
	st := wantSeeds

	for _, line := range builder.SplitLines(c.Rest()) {
		if len(line) == 0 {
			if st == inMap {
				st = betweenMaps
			}
			continue
		}
		lc := builder.NewCursor(Grammar, line)
		head, _ := lc.Peek()

		switch {
		case st == wantSeeds:
			seeds, err := seedLine(lc)
			if err != nil {
				return nil, err
			}
			a.Seeds = seeds
			st = betweenMaps

		case head.Kind == lexer.KindKeyword:
			m, err := mapHeader(lc)
			if err != nil {
				return nil, err
			}
			want := Seed
			if n := len(a.Maps); n > 0 {
				want = a.Maps[n-1].To
			}
			if m.From != want {
				return nil, lc.Unexpected(head, "map from %s, chain is at %s", m.From, want)
			}
			a.Maps = append(a.Maps, m)
			st = inMap

		case st == inMap:
			e, err := entryLine(lc)
			if err != nil {
				return nil, err
			}
			cur := &a.Maps[len(a.Maps)-1]
			cur.Entries = append(cur.Entries, e)

		default:
			return nil, lc.Unexpected(head, "range outside a map")
		}
	}

	if st == wantSeeds {
		return nil, c.Missing("a 'seeds:' line")
	}
	if len(a.Maps) == 0 {
		return nil, c.Missing("a map")
	}
	return a, nil
}

func seedLine(c *builder.Cursor) ([]int64, error) {
	if _, err := c.Keyword(kwSeeds, "'seeds'"); err != nil {
		return nil, err
	}
	if err := c.Separator(lexer.SepColon, "':'"); err != nil {
		return nil, err
	}
	var seeds []int64
	for !c.Done() {
		v, err := c.Number("a seed")
		if err != nil {
			tok, _ := c.Peek()
			return nil, c.Unexpected(tok, "expected a seed number")
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func category(c *builder.Cursor, field string) (Category, error) {
	tok, err := c.AnyKeyword(field)
	if err != nil {
		return 0, err
	}
	if _, ok := categoryNames[Category(tok.Keyword)]; !ok {
		return 0, c.Unexpected(tok, "%s is not a category", tok.Text)
	}
	return Category(tok.Keyword), nil
}

// mapHeader reads "<from>-to-<to> map:".
func mapHeader(c *builder.Cursor) (Map, error) {
	from, err := category(c, "source category")
	if err != nil {
		return Map{}, err
	}
	if err := c.Separator(lexer.SepDash, "'-'"); err != nil {
		return Map{}, err
	}
	if _, err := c.Keyword(kwTo, "'to'"); err != nil {
		return Map{}, err
	}
	if err := c.Separator(lexer.SepDash, "'-'"); err != nil {
		return Map{}, err
	}
	to, err := category(c, "destination category")
	if err != nil {
		return Map{}, err
	}
	if _, err := c.Keyword(kwMap, "'map'"); err != nil {
		return Map{}, err
	}
	if err := c.Separator(lexer.SepColon, "':'"); err != nil {
		return Map{}, err
	}
	if tok, ok := c.Peek(); ok {
		return Map{}, c.Unexpected(tok, "trailing %v after map header", tok)
	}
	return Map{From: from, To: to}, nil
}

// entryLine reads "<dst> <src> <len>". The line is never empty.
func entryLine(c *builder.Cursor) (Entry, error) {
	line := c.Rest()
	if len(line) != 3 {
		return Entry{}, c.Unexpected(line[min(len(line), 3)-1], "range needs three numbers, got %d tokens", len(line))
	}
	var v [3]int64
	for i, tok := range line {
		if tok.Kind != lexer.KindNumber {
			return Entry{}, c.Unexpected(tok, "expected a number in range, got %v", tok)
		}
		v[i] = tok.Value
	}
	return Entry{Dst: v[0], Src: v[1], Len: v[2]}, nil
}

// String renders the almanac in its input format.
func (a *Almanac) String() string {
	var b strings.Builder
	b.WriteString("seeds:")
	for _, s := range a.Seeds {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(s, 10))
	}
	b.WriteByte('\n')
	for _, m := range a.Maps {
		b.WriteString("\n" + m.Name() + " map:\n")
		for _, e := range m.Entries {
			b.WriteString(strconv.FormatInt(e.Dst, 10) + " " +
				strconv.FormatInt(e.Src, 10) + " " +
				strconv.FormatInt(e.Len, 10) + "\n")
		}
	}
	return b.String()
}
