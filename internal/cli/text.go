package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/smgrid/internal/present"
	"github.com/mithrel/smgrid/internal/text"
)

// readInput joins args with spaces, or reads stdin when there are none.
// One trailing line ending from stdin is dropped; it belongs to the pipe,
// not the text.
func readInput(cmd *cobra.Command, args []string) (text.Value, error) {
	if len(args) > 0 {
		return text.Text(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return text.Absent, fmt.Errorf("read stdin: %w", err)
	}
	s := string(data)
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		s = t
	} else {
		s = strings.TrimSuffix(s, "\n")
	}
	return text.Text(s), nil
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Replace control and non-ASCII characters with display glyphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			lines := strings.Split(text.Sanitize(in), "\n")
			return present.RenderBlock(cmd.OutOrStdout(), lines, app.Present)
		},
	}
}

func newWrapCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:         "wrap [text...]",
		Short:       "Word-wrap text into fixed-width lines",
		Annotations: map[string]string{configKeyAnnotation + "width": "wrap.width"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			w := resolveWidth(cmd.OutOrStdout(), app.Cfg.Wrap.Width)
			lines := text.WordWrap(in, w)
			app.Log.Printf("wrap: width=%d lines=%d", w, len(lines))
			return present.RenderBlock(cmd.OutOrStdout(), lines, app.Present)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "line width (0 fits the terminal)")
	return cmd
}

func newSourceCmd() *cobra.Command {
	var width, column int
	cmd := &cobra.Command{
		Use:   "source [text...]",
		Short: "Render a source excerpt with line-break markers and background fill",
		Annotations: map[string]string{
			configKeyAnnotation + "width":  "source.width",
			configKeyAnnotation + "column": "source.column",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			w := resolveWidth(cmd.OutOrStdout(), app.Cfg.Source.Width)
			lines := text.RenderSource(app.Cfg.Source.Column, in, w)
			app.Log.Printf("source: column=%d width=%d lines=%d", app.Cfg.Source.Column, w, len(lines))
			return present.RenderBlock(cmd.OutOrStdout(), lines, app.Present)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "line width (0 fits the terminal)")
	cmd.Flags().IntVarP(&column, "column", "c", 1, "1-based column where content starts")
	return cmd
}

func newIntCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "int [--] <value>",
		Short: "Zero-pad an integer, or print dashes when it is not a number",
		Long: "Zero-pad an integer, or print dashes when it is not a number.\n\n" +
			"Values starting with '-' must follow '--', otherwise they are read as flags.",
		Example: "  smgrid int 12 -w 6\n  smgrid int -- -3",
		Args:    cobra.ExactArgs(1),
		Annotations: map[string]string{configKeyAnnotation + "width": "int.width"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			n := text.NoNumber
			if i, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				n = text.NumberFromAny(i)
			} else if f, err := strconv.ParseFloat(args[0], 64); err == nil {
				n = text.Float(f)
			}
			out := text.FormatInt(n, app.Cfg.Int.Width)
			return present.RenderBlock(cmd.OutOrStdout(), []string{out}, app.Present)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 4, "total width")
	return cmd
}
