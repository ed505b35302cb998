package lexer

import (
	"fmt"
	"strconv"
)

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindKeyword
	KindSeparator
	KindWord // free word from Grammar.Words
	KindMark // punctuation passed through by Grammar.Marks
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindKeyword:
		return "Keyword"
	case KindSeparator:
		return "Separator"
	case KindWord:
		return "Word"
	case KindMark:
		return "Mark"
	}
	return "Invalid"
}

// Keyword is a grammar-defined marker word. Each grammar declares its own
// constants starting at 1; zero means "no keyword".
type Keyword uint16

// Separator is a single-character delimiter.
type Separator uint8

const (
	SepNone Separator = iota
	SepColon
	SepPipe
	SepSemicolon
	SepComma
	SepDash
	SepNewline
)

var separatorChars = [...]byte{
	SepColon:     ':',
	SepPipe:      '|',
	SepSemicolon: ';',
	SepComma:     ',',
	SepDash:      '-',
	SepNewline:   '\n',
}

// Char returns the byte the separator is spelled with.
func (s Separator) Char() byte {
	if int(s) < len(separatorChars) {
		return separatorChars[s]
	}
	return 0
}

func (s Separator) String() string {
	switch s {
	case SepColon:
		return "Colon"
	case SepPipe:
		return "Pipe"
	case SepSemicolon:
		return "Semicolon"
	case SepComma:
		return "Comma"
	case SepDash:
		return "Dash"
	case SepNewline:
		return "Newline"
	}
	return "None"
}

// Token is one lexical unit. Only the fields relevant to Kind are set;
// Line and Col are 0-based and always set.
type Token struct {
	Kind    Kind
	Value   int64     // KindNumber
	Keyword Keyword   // KindKeyword
	Sep     Separator // KindSeparator
	Mark    byte      // KindMark
	Text    string    // lexeme for numbers, keywords and words
	Line    int
	Col     int
}

// Number builds a number token without position.
func Number(v int64) Token {
	return Token{Kind: KindNumber, Value: v, Text: strconv.FormatInt(v, 10)}
}

// Sep builds a separator token without position.
func Sep(s Separator) Token {
	return Token{Kind: KindSeparator, Sep: s}
}

// Is reports whether the token is the given separator.
func (t Token) Is(s Separator) bool {
	return t.Kind == KindSeparator && t.Sep == s
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(k Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == k
}

// Len is the number of source bytes the token spans.
func (t Token) Len() int {
	switch t.Kind {
	case KindSeparator, KindMark:
		return 1
	}
	return len(t.Text)
}

// Equal compares tokens ignoring source position.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindNumber:
		return t.Value == o.Value
	case KindKeyword:
		return t.Keyword == o.Keyword
	case KindSeparator:
		return t.Sep == o.Sep
	case KindMark:
		return t.Mark == o.Mark
	case KindWord:
		return t.Text == o.Text
	}
	return true
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("Number(%d)", t.Value)
	case KindKeyword:
		return fmt.Sprintf("Keyword(%s)", t.Text)
	case KindSeparator:
		return fmt.Sprintf("Separator(%s)", t.Sep)
	case KindWord:
		return fmt.Sprintf("Word(%s)", t.Text)
	case KindMark:
		return fmt.Sprintf("Mark(%c)", t.Mark)
	}
	return "Invalid"
}
