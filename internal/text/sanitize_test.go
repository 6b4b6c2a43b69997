package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("converts non printable characters", func(t *testing.T) {
		got := Sanitize(Text("the quick\r\tbrown\r\nfoxሴ\x08"))
		assert.Equal(t, "the quick⇦⇨brown\nfox��", got)
	})

	t.Run("empty-equivalent inputs", func(t *testing.T) {
		for _, v := range []any{nil, math.NaN(), false, true, 12} {
			assert.Equal(t, "", Sanitize(FromAny(v)), "input %#v", v)
		}
		assert.Equal(t, "", Sanitize(Absent))
	})

	t.Run("printable ascii boundaries", func(t *testing.T) {
		assert.Equal(t, " ~", Sanitize(Text("\x20\x7e")))
		assert.Equal(t, "��", Sanitize(Text("\x1f\x7f")))
		assert.Equal(t, "�", Sanitize(Text("\u0085")))
		assert.Equal(t, "��x", Sanitize(Text("é→x")))
	})

	t.Run("invalid utf8 bytes become one glyph each", func(t *testing.T) {
		assert.Equal(t, "a��b", Sanitize(Text("a\xff\xfeb")))
	})

	t.Run("lone carriage returns", func(t *testing.T) {
		assert.Equal(t, "⇦a\n⇦", Sanitize(Text("\ra\r\n\r")))
		assert.Equal(t, "⇦\n", Sanitize(Text("\r\r\n")))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"",
			"plain",
			"the quick\r\tbrown\r\nfoxሴ\x08",
			"⇦⇨�\n",
			"\xff\x00\x7f░⏎",
		}
		for _, in := range inputs {
			once := Sanitize(Text(in))
			assert.Equal(t, once, Sanitize(Text(once)), "input %q", in)
		}
	})
}
