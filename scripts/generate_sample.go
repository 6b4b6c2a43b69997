package main

import (
	"fmt"
	mrand "math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type segment struct {
	Line   any `yaml:"line"`
	Column any `yaml:"column"`
	Text   any `yaml:"text"`
}

type row struct {
	Label     any     `yaml:"label"`
	Original  segment `yaml:"original"`
	Generated segment `yaml:"generated"`
}

var words = []string{"const", "foo", "=", "bar", "(", ")", ";", "return", "baz", "\t", "\r\n", "\n", "x", "é"}

// main writes a rows document for `smgrid grid`, mixing in the inputs that
// render as unknown (null, NaN, false, numeric strings).
func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const total = 50
	rows := make([]row, 0, total)
	for i := 0; i < total; i++ {
		r := row{
			Label:     fmt.Sprintf("src/module%02d.js", i%7),
			Original:  segment{Line: 1 + mr.Intn(400), Column: 1 + mr.Intn(40), Text: snippet(mr)},
			Generated: segment{Line: 1 + mr.Intn(20), Column: 1 + mr.Intn(2000), Text: snippet(mr)},
		}
		switch i % 10 {
		case 3:
			r.Original.Text = nil
		case 5:
			r.Generated.Line = "12"
		case 7:
			r.Label = false
		}
		rows = append(rows, r)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"rows": rows}); err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
	_ = enc.Close()
}

func snippet(mr *mrand.Rand) string {
	n := 1 + mr.Intn(12)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[mr.Intn(len(words))])
	}
	return b.String()
}
