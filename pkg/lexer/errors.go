package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is an unrecognized character or word.
	ErrSyntax = errors.New("syntax error")
	// ErrNumberOutOfRange is a digit run that does not fit the grammar's integer width.
	ErrNumberOutOfRange = errors.New("number out of range")
	// ErrMissingField is a required identifier or line that is absent.
	ErrMissingField = errors.New("missing field")
	// ErrUnexpectedToken is a token in a position the grammar forbids.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError locates a failure in the input. It unwraps to one of the
// sentinel errors above.
type ParseError struct {
	Err     error
	Grammar string
	Line    int // 0-based
	Col     int // 0-based
	Text    string
	Msg     string
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("%s: %v at line %d col %d", e.Grammar, e.Err, e.Line+1, e.Col+1)
	if e.Text != "" {
		s += fmt.Sprintf(" near %q", e.Text)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError positioned at tok.
func Errorf(kind error, grammar string, tok Token, format string, args ...any) *ParseError {
	text := tok.Text
	switch tok.Kind {
	case KindSeparator:
		text = string(tok.Sep.Char())
		if tok.Sep == SepNewline {
			text = `\n`
		}
	case KindMark:
		text = string(tok.Mark)
	}
	return &ParseError{
		Err:     kind,
		Grammar: grammar,
		Line:    tok.Line,
		Col:     tok.Col,
		Text:    text,
		Msg:     fmt.Sprintf(format, args...),
	}
}
