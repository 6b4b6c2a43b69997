package format

import (
	"encoding/json"
	"io"
)

// WriteNDJSONBlocks writes blocks as newline-delimited JSON objects.
func WriteNDJSONBlocks(w io.Writer, blocks [][]string) error {
	enc := json.NewEncoder(w)
	for _, b := range blocks {
		if err := enc.Encode(Block{Lines: b}); err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSONBlock writes a single block as one JSON line.
func WriteNDJSONBlock(w io.Writer, lines []string) error {
	return json.NewEncoder(w).Encode(Block{Lines: lines})
}
