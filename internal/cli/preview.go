package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/internal/ui/pretty"
	"github.com/yaklabco/gridmark/pkg/config"
	"github.com/yaklabco/gridmark/pkg/grid"
)

func newPreviewCommand() *cobra.Command {
	var cfg config.Config
	var flavor string
	var width int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Draw the grids of a Markdown file in the terminal",
		Long: `Draw every grid of a Markdown file as a box of aligned columns, one line per
row. Columns shrink to fit the terminal; use "-" to read from stdin.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flavor = config.Flavor(flavor)
			return runPreview(cmd, args[0], &cfg, width)
		},
	}

	cmd.Flags().StringVar(&flavor, "flavor", "", "Markdown flavor: commonmark, gfm (default commonmark)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "maximum line width (default: terminal width)")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, cliCfg *config.Config, width int) error {
	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	doc, err := parseInput(cmd, sess, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sess.styles.FormatFileHeader(sess.display(doc.Path), len(doc.Grids)))

	if width <= 0 {
		width = pretty.TerminalWidth(os.Stdout)
	}
	formatter := pretty.NewGridFormatter(sess.styles, width)
	for _, g := range doc.Grids {
		tables, err := grid.Build(g.Events, doc.Content)
		if err != nil {
			return fmt.Errorf("grid at line %d: %w", g.Line(), err)
		}
		fmt.Fprintf(out, "\n%s\n", sess.styles.Location.Render(fmt.Sprintf("line %d", g.Line())))
		for _, table := range tables {
			fmt.Fprint(out, formatter.Format(table))
		}
	}
	return nil
}
