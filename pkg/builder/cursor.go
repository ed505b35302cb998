// Package builder turns token sequences produced by package lexer into
// records. It never looks at characters: every token it consumes has
// already been validated by the scanner.
package builder

import (
	"github.com/agenthands/advent/pkg/lexer"
)

// Cursor walks a finalized token sequence.
type Cursor struct {
	g    *lexer.Grammar
	toks []lexer.Token
	pos  int
}

// NewCursor creates a cursor over toks. The grammar is used for
// diagnostics only.
func NewCursor(g *lexer.Grammar, toks []lexer.Token) *Cursor {
	return &Cursor{g: g, toks: toks}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (lexer.Token, bool) {
	if c.Done() {
		return lexer.Token{}, false
	}
	return c.toks[c.pos], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (lexer.Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// Rest consumes and returns every remaining token.
func (c *Cursor) Rest() []lexer.Token {
	rest := c.toks[c.pos:]
	c.pos = len(c.toks)
	return rest
}

// Accept consumes the next token if it is the separator s.
func (c *Cursor) Accept(s lexer.Separator) bool {
	if tok, ok := c.Peek(); ok && tok.Is(s) {
		c.pos++
		return true
	}
	return false
}

// Keyword consumes the required keyword kw.
func (c *Cursor) Keyword(kw lexer.Keyword, field string) (lexer.Token, error) {
	tok, ok := c.Peek()
	if !ok || !tok.IsKeyword(kw) {
		return tok, c.Missing(field)
	}
	c.pos++
	return tok, nil
}

// AnyKeyword consumes a required keyword of any value.
func (c *Cursor) AnyKeyword(field string) (lexer.Token, error) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != lexer.KindKeyword {
		return tok, c.Missing(field)
	}
	c.pos++
	return tok, nil
}

// Number consumes a required number.
func (c *Cursor) Number(field string) (int64, error) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != lexer.KindNumber {
		return 0, c.Missing(field)
	}
	c.pos++
	return tok.Value, nil
}

// Separator consumes the required separator s.
func (c *Cursor) Separator(s lexer.Separator, field string) error {
	if !c.Accept(s) {
		return c.Missing(field)
	}
	return nil
}

// Missing reports that field was expected at the cursor position.
func (c *Cursor) Missing(field string) error {
	tok, ok := c.Peek()
	if !ok {
		tok = c.end()
		return lexer.Errorf(lexer.ErrMissingField, c.g.Name, tok, "expected %s at end of input", field)
	}
	return lexer.Errorf(lexer.ErrMissingField, c.g.Name, tok, "expected %s, got %v", field, tok)
}

// Unexpected reports tok as forbidden in its position.
func (c *Cursor) Unexpected(tok lexer.Token, format string, args ...any) error {
	return lexer.Errorf(lexer.ErrUnexpectedToken, c.g.Name, tok, format, args...)
}

// end is a pseudo token positioned just past the last real token.
func (c *Cursor) end() lexer.Token {
	if len(c.toks) == 0 {
		return lexer.Token{}
	}
	last := c.toks[len(c.toks)-1]
	return lexer.Token{Line: last.Line, Col: last.Col + last.Len()}
}

// Build runs fn over toks and requires it to consume every token. On
// error the zero record is returned.
func Build[R any](g *lexer.Grammar, toks []lexer.Token, fn func(*Cursor) (R, error)) (R, error) {
	var zero R
	c := NewCursor(g, toks)
	rec, err := fn(c)
	if err != nil {
		return zero, err
	}
	if tok, ok := c.Peek(); ok {
		return zero, c.Unexpected(tok, "trailing %v", tok)
	}
	return rec, nil
}

// Parse tokenizes src under g and builds a record from the tokens.
func Parse[R any](g *lexer.Grammar, src string, fn func(*Cursor) (R, error)) (R, error) {
	toks, err := lexer.Tokenize(g, src)
	if err != nil {
		var zero R
		return zero, err
	}
	return Build(g, toks, fn)
}

// SplitLines splits toks on newline separators. Blank lines yield empty
// slices; a trailing newline does not add a final empty line.
func SplitLines(toks []lexer.Token) [][]lexer.Token {
	var lines [][]lexer.Token
	start := 0
	for i, t := range toks {
		if t.Is(lexer.SepNewline) {
			lines = append(lines, toks[start:i])
			start = i + 1
		}
	}
	if start < len(toks) {
		lines = append(lines, toks[start:])
	}
	return lines
}
