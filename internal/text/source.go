package text

import "strings"

// RenderSource sanitizes v and hard-wraps it into lines of exactly width
// runes. Columns before startColumn on the first line, and columns after
// the last character, are GlyphBackground. A real LF is shown as
// GlyphLineBreak followed by spaces, since more content follows it.
func RenderSource(startColumn int, v Value, width int) []string {
	width = clampMin(width, 1)
	startColumn = clampMin(startColumn, 1)

	r := sourceRenderer{width: width}
	for i := 1; i < startColumn; i++ {
		r.put(GlyphBackground)
	}
	for _, c := range Sanitize(v) {
		if c == '\n' {
			r.lineBreak()
			continue
		}
		r.put(c)
	}
	r.fill(GlyphBackground)
	r.flush()
	return r.lines
}

type sourceRenderer struct {
	width int
	lines []string
	cur   []rune
}

// put appends c, starting a new line first when the current one is full.
func (r *sourceRenderer) put(c rune) {
	if len(r.cur) == r.width {
		r.flush()
	}
	r.cur = append(r.cur, c)
}

// lineBreak marks an LF. When the current line has no free column the marker
// takes a line of its own.
func (r *sourceRenderer) lineBreak() {
	if len(r.cur) == r.width {
		r.flush()
	}
	r.cur = append(r.cur, GlyphLineBreak)
	r.fill(' ')
	r.flush()
}

func (r *sourceRenderer) fill(c rune) {
	for len(r.cur) < r.width {
		r.cur = append(r.cur, c)
	}
}

func (r *sourceRenderer) flush() {
	var b strings.Builder
	for _, c := range r.cur {
		b.WriteRune(c)
	}
	r.lines = append(r.lines, b.String())
	r.cur = r.cur[:0]
}
