package lexer

import "strings"

// Format renders tokens back to source text under g. Tokens are joined
// by single spaces; newline separators start a new line. Tokenizing the
// result yields a sequence Equal to toks.
func Format(g *Grammar, toks []Token) string {
	var b strings.Builder
	atLineStart := true
	for _, t := range toks {
		if t.Is(SepNewline) {
			b.WriteByte('\n')
			atLineStart = true
			continue
		}
		if !atLineStart {
			b.WriteByte(' ')
		}
		atLineStart = false

		switch t.Kind {
		case KindNumber, KindWord:
			b.WriteString(t.Text)
		case KindKeyword:
			b.WriteString(g.Spell(t.Keyword))
		case KindSeparator:
			b.WriteByte(t.Sep.Char())
		case KindMark:
			b.WriteByte(t.Mark)
		}
	}
	return b.String()
}
