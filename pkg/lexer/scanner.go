package lexer

import (
	"unicode/utf8"
)

type state uint8

const (
	stateOutside state = iota
	stateNumber
	stateWord
)

// Scanner performs lexical analysis of text under a Grammar. A Scanner
// is not safe for concurrent use; create one per goroutine or use
// Tokenize.
type Scanner struct {
	g      *Grammar
	src    string
	cursor int
	line   int
	col    int

	state     state
	start     int
	startLine int
	startCol  int

	tokens []Token
}

// NewScanner creates a scanner for the given grammar.
func NewScanner(g *Grammar) *Scanner {
	return &Scanner{g: g}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(src string) {
	s.src = src
	s.cursor = 0
	s.line = 0
	s.col = 0
	s.state = stateOutside
	s.tokens = s.tokens[:0]
}

// Tokenize scans src with a fresh scanner.
func Tokenize(g *Grammar, src string) ([]Token, error) {
	return NewScanner(g).Scan(src)
}

// Scan converts src into an ordered token sequence. The returned slice
// is owned by the caller. On error no tokens are returned.
func (s *Scanner) Scan(src string) ([]Token, error) {
	if err := s.g.Compile(); err != nil {
		return nil, err
	}
	s.Reset(src)

	// The position one past the end reads as a space so that an open
	// buffer is closed by the ordinary whitespace transition.
	for s.cursor <= len(s.src) {
		ch := s.at(s.cursor)

		switch s.state {
		case stateOutside:
			switch {
			case isDigit(ch):
				s.open(stateNumber)
			case isAlpha(ch):
				s.open(stateWord)
			case s.isSpace(ch):
			default:
				if err := s.single(ch); err != nil {
					return nil, err
				}
			}
			s.advance(ch)

		case stateNumber, stateWord:
			if isDigit(ch) || isAlpha(ch) {
				s.advance(ch)
				continue
			}
			if err := s.close(); err != nil {
				return nil, err
			}
			// ch is reprocessed from stateOutside.
		}
	}

	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out, nil
}

func (s *Scanner) at(i int) byte {
	if i < len(s.src) {
		return s.src[i]
	}
	return ' '
}

func (s *Scanner) advance(ch byte) {
	s.cursor++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

func (s *Scanner) open(st state) {
	s.state = st
	s.start = s.cursor
	s.startLine = s.line
	s.startCol = s.col
}

func (s *Scanner) isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r':
		return true
	case '\n':
		return !s.g.Newlines
	}
	return s.g.Blank != 0 && ch == s.g.Blank
}

// single handles a character outside any buffer that is neither a
// digit, a letter nor whitespace.
func (s *Scanner) single(ch byte) error {
	if sep := s.g.seps[ch]; sep != SepNone {
		s.emit(Token{Kind: KindSeparator, Sep: sep, Line: s.line, Col: s.col})
		return nil
	}
	if s.g.Marks && isPunct(ch) {
		s.emit(Token{Kind: KindMark, Mark: ch, Line: s.line, Col: s.col})
		return nil
	}
	text := string(ch)
	if ch >= utf8.RuneSelf {
		r, _ := utf8.DecodeRuneInString(s.src[s.cursor:])
		text = string(r)
	}
	return &ParseError{
		Err:     ErrSyntax,
		Grammar: s.g.Name,
		Line:    s.line,
		Col:     s.col,
		Text:    text,
		Msg:     "unexpected character",
	}
}

// close interprets the buffered text and returns to stateOutside.
func (s *Scanner) close() error {
	text := s.src[s.start:s.cursor]
	tok := Token{Text: text, Line: s.startLine, Col: s.startCol}
	st := s.state
	s.state = stateOutside

	if st == stateNumber && allDigits(text) {
		v, ok := parseDigits(text, s.g.max)
		if !ok {
			return s.fail(ErrNumberOutOfRange, tok, "exceeds %d", s.g.max)
		}
		tok.Kind = KindNumber
		tok.Value = v
		s.emit(tok)
		return nil
	}
	if kw, ok := s.g.keyword(text); ok {
		tok.Kind = KindKeyword
		tok.Keyword = kw
		s.emit(tok)
		return nil
	}
	if s.g.isWord(text) {
		tok.Kind = KindWord
		s.emit(tok)
		return nil
	}
	if st == stateNumber {
		return s.fail(ErrSyntax, tok, "malformed number")
	}
	return s.fail(ErrSyntax, tok, "unknown word")
}

func (s *Scanner) emit(tok Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *Scanner) fail(kind error, tok Token, format string, args ...any) error {
	return Errorf(kind, s.g.Name, tok, format, args...)
}

// parseDigits accumulates a run of ASCII digits, reporting false once the
// value passes limit.
func parseDigits(text string, limit uint64) (int64, bool) {
	var v uint64
	for i := 0; i < len(text); i++ {
		d := uint64(text[i] - '0')
		if d > limit || v > (limit-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return int64(v), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isPunct(ch byte) bool {
	return ch > ' ' && ch < 0x7f && !isDigit(ch) && !isAlpha(ch)
}
