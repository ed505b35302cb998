package lexer

import (
	"fmt"
	"strings"
	"sync"
)

// Grammar parameterizes the scanner for one input format.
type Grammar struct {
	Name       string
	Keywords   map[string]Keyword
	FoldCase   bool
	Separators []Separator
	Newlines   bool   // '\n' emits SepNewline instead of being skipped
	Blank      byte   // extra byte treated as whitespace, 0 for none
	Marks      bool   // other ASCII punctuation emits KindMark
	Words      string // alphabet of free words, empty to disallow
	Bits       int    // integer width of numbers, 0 means 64

	once     sync.Once
	err      error
	lookup   map[string]Keyword
	spelling map[Keyword]string
	seps     [256]Separator
	words    [256]bool
	max      uint64
}

// Compile validates the grammar and builds its lookup tables. It is
// called lazily by Tokenize; calling it up front surfaces configuration
// errors early. A compiled grammar is read-only and safe to share.
func (g *Grammar) Compile() error {
	g.once.Do(func() { g.err = g.compile() })
	return g.err
}

func (g *Grammar) compile() error {
	bits := g.Bits
	if bits == 0 {
		bits = 64
	}
	if bits < 2 || bits > 64 {
		return fmt.Errorf("grammar %s: integer width %d out of range", g.Name, bits)
	}
	g.max = 1<<(bits-1) - 1

	g.lookup = make(map[string]Keyword, len(g.Keywords))
	g.spelling = make(map[Keyword]string, len(g.Keywords))
	for word, kw := range g.Keywords {
		if kw == 0 {
			return fmt.Errorf("grammar %s: keyword %q uses reserved value 0", g.Name, word)
		}
		if !isWord(word) {
			return fmt.Errorf("grammar %s: keyword %q is not a word", g.Name, word)
		}
		key := word
		if g.FoldCase {
			key = strings.ToLower(word)
		}
		if prev, ok := g.lookup[key]; ok && prev != kw {
			return fmt.Errorf("grammar %s: keyword %q is ambiguous", g.Name, word)
		}
		g.lookup[key] = kw
		if cur, ok := g.spelling[kw]; !ok || word < cur {
			g.spelling[kw] = word
		}
	}

	for _, s := range g.Separators {
		ch := s.Char()
		if ch == 0 || s == SepNewline {
			return fmt.Errorf("grammar %s: invalid separator %v", g.Name, s)
		}
		g.seps[ch] = s
	}
	if g.Newlines {
		g.seps['\n'] = SepNewline
	}
	if g.Blank != 0 && (isDigit(g.Blank) || isAlpha(g.Blank) || g.seps[g.Blank] != SepNone) {
		return fmt.Errorf("grammar %s: blank %q collides with another class", g.Name, g.Blank)
	}
	for i := 0; i < len(g.Words); i++ {
		ch := g.Words[i]
		if !isDigit(ch) && !isAlpha(ch) {
			return fmt.Errorf("grammar %s: word alphabet contains %q", g.Name, ch)
		}
		g.words[ch] = true
	}
	return nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level grammar variables.
func MustCompile(g *Grammar) *Grammar {
	if err := g.Compile(); err != nil {
		panic(err)
	}
	return g
}

// Spell returns the canonical text of a keyword.
func (g *Grammar) Spell(kw Keyword) string {
	return g.spelling[kw]
}

func (g *Grammar) keyword(word string) (Keyword, bool) {
	if g.FoldCase {
		word = strings.ToLower(word)
	}
	kw, ok := g.lookup[word]
	return kw, ok
}

func (g *Grammar) isWord(word string) bool {
	if len(g.Words) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !g.words[word[i]] {
			return false
		}
	}
	return true
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return isAlpha(s[0])
}
