package text

import (
	"strings"
	"unicode/utf8"
)

// WordWrap sanitizes v and wraps each LF-separated paragraph at spaces into
// lines padded to width. The result is never empty. A token longer than
// width is not split and is the only case where a line exceeds width.
func WordWrap(v Value, width int) []string {
	width = clampMin(width, 1)
	paragraphs := strings.Split(Sanitize(v), "\n")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, wrapParagraph(p, width)...)
	}
	return lines
}

func wrapParagraph(p string, width int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{strings.Repeat(" ", width)}
	}

	var out []string
	var cur strings.Builder
	curW := 0
	for _, word := range words {
		ww := utf8.RuneCountInString(word)
		sep := 0
		if curW > 0 {
			sep = 1
		}
		if curW > 0 && curW+sep+ww > width {
			out = append(out, padRight(cur.String(), curW, width, ' '))
			cur.Reset()
			curW = 0
			sep = 0
		}
		if sep > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
		curW += sep + ww
	}
	return append(out, padRight(cur.String(), curW, width, ' '))
}

// padRight fills s, currently n runes long, with fill up to width runes.
func padRight(s string, n, width int, fill rune) string {
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-n)
}
