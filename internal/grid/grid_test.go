package grid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/smgrid/internal/text"
)

const sample = `rows:
  - label: src/index.js
    original: {line: 1, column: 5, text: "foo\nbar"}
    generated: {line: 12, column: 1, text: "foo;bar"}
  - label: null
    original: {line: .nan, column: "3", text: false}
    generated: {line: "12", column: null, text: 42}
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2)

	first := doc.Rows[0]
	assert.Equal(t, "src/index.js", first.Label.String())
	assert.Equal(t, "foo\nbar", first.Original.Text.String())
	assert.Equal(t, 5, first.Original.StartColumn())
	assert.Equal(t, "0012", text.FormatInt(first.Generated.Line, 4))

	second := doc.Rows[1]
	assert.True(t, second.Label.IsAbsent())
	assert.True(t, second.Original.Text.IsAbsent())
	assert.True(t, second.Generated.Text.IsAbsent(), "numbers are not text")
	assert.False(t, second.Original.Line.Usable(), ".nan is not a usable number")
	assert.False(t, second.Original.Column.Usable(), "strings are never parsed")
	assert.False(t, second.Generated.Line.Usable())
	assert.Equal(t, 1, second.Original.StartColumn())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoRows))

	_, err = Load(strings.NewReader("rows: []\n"))
	assert.True(t, errors.Is(err, ErrNoRows))

	_, err = Load(strings.NewReader("rows: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode rows")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Rows, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
