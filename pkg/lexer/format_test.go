package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/advent/pkg/lexer"
)

func TestFormatRoundTrip(t *testing.T) {
	g := lexer.MustCompile(&lexer.Grammar{
		Name:       "round",
		Keywords:   map[string]lexer.Keyword{"Time": kwTime, "Distance": kwDistance},
		Separators: []lexer.Separator{lexer.SepColon, lexer.SepPipe},
		Newlines:   true,
	})

	srcs := []string{
		"Time:      7  15   30\nDistance:  9  40  200",
		"1|2:3",
		"\n\nTime",
	}
	for _, src := range srcs {
		toks, err := lexer.Tokenize(g, src)
		require.NoError(t, err)

		again, err := lexer.Tokenize(g, lexer.Format(g, toks))
		require.NoError(t, err)
		require.Len(t, again, len(toks))
		for i := range toks {
			assert.True(t, toks[i].Equal(again[i]), "%q token %d: %v != %v", src, i, toks[i], again[i])
		}
	}
}

func TestFormatSpacing(t *testing.T) {
	toks := []lexer.Token{
		lexer.Number(1), lexer.Sep(lexer.SepPipe), lexer.Number(2),
		lexer.Sep(lexer.SepNewline), lexer.Number(3),
	}
	assert.Equal(t, "1 | 2\n3", lexer.Format(testGrammar, toks))
}
