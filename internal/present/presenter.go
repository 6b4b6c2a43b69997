package present

import (
	"io"

	"github.com/mithrel/smgrid/internal/present/format"
)

type Mode int

const (
	ModePlain Mode = iota
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
}

// ParseMode parses a string like "plain", "json", "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// RenderBlocks renders a sequence of blocks (grid rows) according to options.
func RenderBlocks(w io.Writer, blocks [][]string, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONBlocks(w, blocks, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONBlocks(w, blocks)
	default:
		return format.WritePlainBlocks(w, blocks)
	}
}

// RenderBlock renders a single block according to options.
func RenderBlock(w io.Writer, lines []string, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONBlock(w, lines, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONBlock(w, lines)
	default:
		return format.WritePlainBlock(w, lines)
	}
}
