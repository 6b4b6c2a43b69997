package format

import (
	"encoding/json"
	"io"
)

// Block is the JSON shape of one rendered block.
type Block struct {
	Lines []string `json:"lines"`
}

func toBlocks(blocks [][]string) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, Block{Lines: b})
	}
	return out
}

func WriteJSONBlocks(w io.Writer, blocks [][]string, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toBlocks(blocks))
}

func WriteJSONBlock(w io.Writer, lines []string, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(Block{Lines: lines})
}
