package grid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mithrel/smgrid/internal/text"
)

// Segment is one side of a mapping: a position and the excerpt found there.
type Segment struct {
	Line   text.Number
	Column text.Number
	Text   text.Value
}

// Row pairs an original-source segment with its generated counterpart.
type Row struct {
	Label     text.Value
	Original  Segment
	Generated Segment
}

// Document is the decoded form of a rows file.
type Document struct {
	Rows []Row
}

// Raw shapes keep scalars as `any` so null, .nan and booleans reach the
// text package untouched.
type rawSegment struct {
	Line   any `yaml:"line"`
	Column any `yaml:"column"`
	Text   any `yaml:"text"`
}

type rawRow struct {
	Label     any        `yaml:"label"`
	Original  rawSegment `yaml:"original"`
	Generated rawSegment `yaml:"generated"`
}

type rawDocument struct {
	Rows []rawRow `yaml:"rows"`
}

var ErrNoRows = errors.New("document has no rows")

// Load decodes a rows document from r.
func Load(r io.Reader) (Document, error) {
	var raw rawDocument
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrNoRows
		}
		return Document{}, fmt.Errorf("decode rows: %w", err)
	}
	if len(raw.Rows) == 0 {
		return Document{}, ErrNoRows
	}
	doc := Document{Rows: make([]Row, 0, len(raw.Rows))}
	for _, rr := range raw.Rows {
		doc.Rows = append(doc.Rows, Row{
			Label:     text.FromAny(rr.Label),
			Original:  segmentFromRaw(rr.Original),
			Generated: segmentFromRaw(rr.Generated),
		})
	}
	return doc, nil
}

// LoadFile reads a rows document from path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open rows file: %w", err)
	}
	defer f.Close()
	doc, err := Load(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func segmentFromRaw(rs rawSegment) Segment {
	return Segment{
		Line:   text.NumberFromAny(rs.Line),
		Column: text.NumberFromAny(rs.Column),
		Text:   text.FromAny(rs.Text),
	}
}

// StartColumn is the 1-based column where the excerpt begins, or 1 when the
// column is unknown.
func (s Segment) StartColumn() int {
	if c, ok := s.Column.IntValue(); ok && c > 1 {
		return c
	}
	return 1
}
