package format

import (
	"bufio"
	"io"
)

// WritePlainBlock writes each line followed by LF.
func WritePlainBlock(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		_, _ = bw.WriteString(l)
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePlainBlocks writes blocks back to back; rows already carry their own
// height so no separator line is added.
func WritePlainBlocks(w io.Writer, blocks [][]string) error {
	for _, b := range blocks {
		if err := WritePlainBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}
