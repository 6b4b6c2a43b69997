package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"plain": ModePlain, "json": ModeJSON, "ndjson": ModeNDJSON} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMode("tui")
	assert.False(t, ok)
}

func TestRenderBlock(t *testing.T) {
	lines := []string{"░░foo⏎ ", "bar░░░"}

	var plain bytes.Buffer
	require.NoError(t, RenderBlock(&plain, lines, Options{Mode: ModePlain}))
	assert.Equal(t, "░░foo⏎ \nbar░░░\n", plain.String())

	var js bytes.Buffer
	require.NoError(t, RenderBlock(&js, lines, Options{Mode: ModeJSON}))
	assert.JSONEq(t, `{"lines":["░░foo⏎ ","bar░░░"]}`, js.String())
}

func TestRenderBlocks(t *testing.T) {
	blocks := [][]string{{"a ", "b "}, {"c "}}

	var plain bytes.Buffer
	require.NoError(t, RenderBlocks(&plain, blocks, Options{Mode: ModePlain}))
	assert.Equal(t, "a \nb \nc \n", plain.String())

	var js bytes.Buffer
	require.NoError(t, RenderBlocks(&js, blocks, Options{Mode: ModeJSON, JSONIndent: true}))
	assert.JSONEq(t, `[{"lines":["a ","b "]},{"lines":["c "]}]`, js.String())

	var nd bytes.Buffer
	require.NoError(t, RenderBlocks(&nd, blocks, Options{Mode: ModeNDJSON}))
	assert.Equal(t, "{\"lines\":[\"a \",\"b \"]}\n{\"lines\":[\"c \"]}\n", nd.String())
}
