package text

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSource(t *testing.T) {
	t.Run("fills empty string", func(t *testing.T) {
		assert.Equal(t, []string{"░░░░░░░░░░░░░░░"}, RenderSource(0, Text(""), 15))
		assert.Equal(t, []string{"░░░░░░░░░░░░░░░"}, RenderSource(5, Text(""), 15))
		assert.Equal(t, []string{"░░░░░░░░░░░░░░░"}, RenderSource(5, FromAny(false), 15))
	})

	t.Run("single word", func(t *testing.T) {
		assert.Equal(t, []string{"░░░░foo░░░░░░░░"}, RenderSource(5, Text("foo"), 15))
	})

	t.Run("word per line", func(t *testing.T) {
		assert.Equal(t, []string{
			"░░░░foo⏎       ",
			"bar⏎           ",
			"baz░░░░░░░░░░░░",
		}, RenderSource(5, Text("foo\nbar\nbaz"), 15))
	})

	t.Run("multi-word multi-line", func(t *testing.T) {
		assert.Equal(t, []string{
			"░░░░The quick b",
			"rown fox⏎      ",
			"jumped over the",
			"⏎              ",
			"lazy dog░░░░░░░",
		}, RenderSource(5, Text("The quick brown fox\njumped over the\nlazy dog"), 15))
	})

	t.Run("start column one has no leading fill", func(t *testing.T) {
		assert.Equal(t, []string{"abc░"}, RenderSource(1, Text("abc"), 4))
	})

	t.Run("content ending on a full line adds no extra line", func(t *testing.T) {
		assert.Equal(t, []string{"abcd"}, RenderSource(1, Text("abcd"), 4))
		assert.Equal(t, []string{"abcd", "ef░░"}, RenderSource(1, Text("abcdef"), 4))
	})

	t.Run("trailing line feed leaves a background line", func(t *testing.T) {
		assert.Equal(t, []string{"ab⏎ ", "░░░░"}, RenderSource(1, Text("ab\n"), 4))
	})

	t.Run("consecutive line feeds", func(t *testing.T) {
		assert.Equal(t, []string{"a⏎  ", "⏎   ", "b░░░"}, RenderSource(1, Text("a\n\nb"), 4))
	})

	t.Run("leading fill wider than a line wraps", func(t *testing.T) {
		assert.Equal(t, []string{"░░░", "░x░"}, RenderSource(5, Text("x"), 3))
	})

	t.Run("sanitizes before layout", func(t *testing.T) {
		assert.Equal(t, []string{"a⇨b⏎", "c░░░"}, RenderSource(1, Text("a\tb\r\nc"), 4))
	})
}

func TestRenderSourceLineWidth(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"The quick brown fox\njumped over the\nlazy dog",
		"tab\tseparated\r\nwindows\rmac\nunicode ሴ é\n\n",
	}
	for _, in := range inputs {
		for w := 1; w <= 16; w++ {
			for start := 0; start <= 6; start++ {
				lines := RenderSource(start, Text(in), w)
				require.NotEmpty(t, lines)
				for _, l := range lines {
					assert.Equal(t, w, utf8.RuneCountInString(l), "input %q start %d width %d line %q", in, start, w, l)
				}
			}
		}
	}
}
