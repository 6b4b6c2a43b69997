package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mithrel/smgrid/internal/grid"
	"github.com/mithrel/smgrid/internal/present"
	"github.com/mithrel/smgrid/internal/ui"
)

func newGridCmd() *cobra.Command {
	var labelWidth, sourceWidth int
	var headers bool
	cmd := &cobra.Command{
		Use:   "grid [rows.yaml]",
		Short: "Lay out original/generated mapping rows side by side",
		Long: "Reads a YAML document of rows (stdin when no file is given):\n\n" +
			"  rows:\n" +
			"    - label: src/index.js\n" +
			"      original: {line: 1, column: 5, text: \"foo\"}\n" +
			"      generated: {line: 3, column: 1, text: \"foo;\"}\n",
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			configKeyAnnotation + "label-width":  "grid.label_width",
			configKeyAnnotation + "source-width": "grid.source_width",
			configKeyAnnotation + "headers":      "grid.headers",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			var doc grid.Document
			var err error
			if len(args) == 1 {
				doc, err = grid.LoadFile(args[0])
			} else {
				doc, err = grid.Load(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			w := ui.Widths{Label: app.Cfg.Grid.LabelWidth, Source: app.Cfg.Grid.SourceWidth}
			blocks := ui.RenderGrid(doc, w, app.Cfg.Grid.Headers && app.Present.Mode == present.ModePlain)
			app.Log.Printf("grid: rendered %d rows", len(doc.Rows))
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(out io.Writer) error {
				return present.RenderBlocks(out, blocks, app.Present)
			})
		},
	}
	cmd.Flags().IntVar(&labelWidth, "label-width", 24, "width of the label column")
	cmd.Flags().IntVar(&sourceWidth, "source-width", 32, "width of each source excerpt column")
	cmd.Flags().BoolVar(&headers, "headers", true, "print a header row (plain output only)")
	return cmd
}
