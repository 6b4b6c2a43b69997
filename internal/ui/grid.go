package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/smgrid/internal/grid"
	"github.com/mithrel/smgrid/internal/text"
)

// Minimum number widths used for the line:column position cells.
const (
	LineDigits   = 4
	ColumnDigits = 3
)

const separator = " │ "

// Widths sizes the variable grid columns. Zero digit widths fall back to
// LineDigits and ColumnDigits.
type Widths struct {
	Label        int
	Source       int
	LineDigits   int
	ColumnDigits int
}

func (w Widths) digits() (line, col int) {
	return max(w.LineDigits, LineDigits), max(w.ColumnDigits, ColumnDigits)
}

// FitPositions widens the digit widths so every position in doc fits, which
// keeps separators at the same offset on every row.
func FitPositions(doc grid.Document, w Widths) Widths {
	for _, r := range doc.Rows {
		for _, s := range []grid.Segment{r.Original, r.Generated} {
			w.LineDigits = max(w.LineDigits, len(text.FormatInt(s.Line, 1)))
			w.ColumnDigits = max(w.ColumnDigits, len(text.FormatInt(s.Column, 1)))
		}
	}
	return w
}

// ExcerptColumn maps a 1-based source column onto a column of an excerpt
// cell width wide, as if the source line were hard-wrapped at width.
// Leading fill therefore never exceeds one line.
func ExcerptColumn(s grid.Segment, width int) int {
	if width < 1 {
		return 1
	}
	return (s.StartColumn()-1)%width + 1
}

// column is one rendered cell of a row and the line used to extend it.
type column struct {
	lines []string
	fill  string
}

// RenderGrid lays out every row of doc as its own block, optionally
// preceded by a header block.
func RenderGrid(doc grid.Document, w Widths, headers bool) [][]string {
	w = FitPositions(doc, w)
	out := make([][]string, 0, len(doc.Rows)+1)
	if headers {
		out = append(out, RenderHeader(w))
	}
	for _, r := range doc.Rows {
		out = append(out, RenderRow(r, w))
	}
	return out
}

// RenderRow renders one mapping as aligned columns:
// label, original position, original excerpt, generated position, generated excerpt.
func RenderRow(r grid.Row, w Widths) []string {
	return joinColumns([]column{
		spaced(text.WordWrap(r.Label, w.Label)),
		spaced([]string{Position(r.Original, w)}),
		background(text.RenderSource(ExcerptColumn(r.Original, w.Source), r.Original.Text, w.Source)),
		spaced([]string{Position(r.Generated, w)}),
		background(text.RenderSource(ExcerptColumn(r.Generated, w.Source), r.Generated.Text, w.Source)),
	})
}

// RenderHeader renders column titles using the same widths as RenderRow.
func RenderHeader(w Widths) []string {
	line, col := w.digits()
	posWidth := line + 1 + col
	return joinColumns([]column{
		spaced(text.WordWrap(text.Text("source"), w.Label)),
		spaced(text.WordWrap(text.Text("orig"), posWidth)),
		spaced(text.WordWrap(text.Text("original"), w.Source)),
		spaced(text.WordWrap(text.Text("gen"), posWidth)),
		spaced(text.WordWrap(text.Text("generated"), w.Source)),
	})
}

// Position formats a segment's location as zero-padded line:column.
func Position(s grid.Segment, w Widths) string {
	line, col := w.digits()
	return text.FormatInt(s.Line, line) + ":" + text.FormatInt(s.Column, col)
}

func spaced(lines []string) column {
	return column{lines: lines, fill: " "}
}

func background(lines []string) column {
	return column{lines: lines, fill: string(text.GlyphBackground)}
}

// joinColumns pads every column to the tallest one and joins them side by side.
func joinColumns(cols []column) []string {
	height := 1
	for _, c := range cols {
		height = max(height, len(c.lines))
	}

	blocks := make([]string, 0, 2*len(cols)-1)
	for i, c := range cols {
		if i > 0 {
			blocks = append(blocks, strings.TrimSuffix(strings.Repeat(separator+"\n", height), "\n"))
		}
		blocks = append(blocks, strings.Join(padHeight(c, height), "\n"))
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
}

func padHeight(c column, height int) []string {
	if len(c.lines) >= height {
		return c.lines
	}
	width := 0
	for _, l := range c.lines {
		width = max(width, lipgloss.Width(l))
	}
	out := make([]string, 0, height)
	out = append(out, c.lines...)
	for len(out) < height {
		out = append(out, strings.Repeat(c.fill, width))
	}
	return out
}
