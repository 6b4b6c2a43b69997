package text

import "strings"

// Reserved glyphs. Callers display them; they are never decoded back.
const (
	GlyphCR          = '⇦'
	GlyphTab         = '⇨'
	GlyphReplacement = '�'
	GlyphBackground  = '░'
	GlyphLineBreak   = '⏎'
)

// Printable ASCII, inclusive.
const (
	printableLow  = 0x20
	printableHigh = 0x7E
)

var crlf = strings.NewReplacer("\r\n", "\n")

// Sanitize maps v onto the display-safe alphabet: printable ASCII, LF and
// the CR, TAB and replacement glyphs. CRLF collapses to LF first, so only
// a lone CR becomes GlyphCR.
func Sanitize(v Value) string {
	s := v.String()
	if s == "" {
		return ""
	}
	s = crlf.Replace(s)
	return strings.Map(sanitizeRune, s)
}

func sanitizeRune(r rune) rune {
	switch {
	case r == '\r':
		return GlyphCR
	case r == '\t':
		return GlyphTab
	case r == '\n':
		return r
	case r >= printableLow && r <= printableHigh:
		return r
	case r == GlyphCR, r == GlyphTab, r == GlyphReplacement:
		return r
	default:
		return GlyphReplacement
	}
}
