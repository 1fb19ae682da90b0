package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/internal/logging"
	"github.com/yaklabco/gridmark/pkg/config"
	"github.com/yaklabco/gridmark/pkg/runner"
)

type renderFlags struct {
	sourceFlags
	summary bool
	diff    bool
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML",
		Long: `Render Markdown files, including their chord grids, to HTML.

By default, renders every .md and .markdown file in the current directory and
its subdirectories, writing each result next to its source with an .html
extension. Files whose output is already up to date are left untouched.`,
		Example: `  gridmark render                      Render the current directory
  gridmark render songs/ -o site/      Mirror songs/ as HTML under site/
  gridmark render verse.md --stdout    Print the HTML of one file
  gridmark render --data-as none       Render tables without data-as
  gridmark render --diff               Show what would change, write nothing`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &cfg, flags)
		},
	}

	addSourceFlags(cmd, &cfg, &flags.sourceFlags)
	cmd.Flags().BoolVar(&cfg.HTML.Unsafe, "unsafe", false, "render raw HTML found in the documents")
	cmd.Flags().BoolVar(&cfg.HTML.XHTML, "xhtml", false, "render XHTML-style void elements")
	cmd.Flags().BoolVar(&cfg.HTML.HardWraps, "hard-wraps", false, "render soft line breaks as <br>")
	cmd.Flags().StringVarP(&cfg.Output.Dir, "output-dir", "o", "", "directory to write HTML files to")
	cmd.Flags().StringVar(&cfg.Output.Extension, "ext", "", `extension of rendered files (default ".html")`)
	cmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "print HTML to stdout instead of writing files")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a diff against existing output instead of writing")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *renderFlags) error {
	flags.apply(cliCfg)

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := sess.cfg
	if flags.diff && cfg.Stdout {
		return fmt.Errorf("%w: --diff and --stdout cannot be combined", ErrInvalidUsage)
	}

	htmlRunner := runner.New(runner.NewParser(cfg, sess.logger), sess.logger)
	result, err := htmlRunner.Run(sess.ctx, runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Write:        !cfg.Stdout && !flags.diff,
		KeepHTML:     cfg.Stdout || flags.diff,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("render run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	report := out
	if cfg.Stdout {
		report = cmd.ErrOrStderr()
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprint(cmd.ErrOrStderr(), sess.styles.FormatFailure(sess.display(file.Path), file.Error))
		case flags.diff:
			if err := printDiff(out, sess, file); err != nil {
				return err
			}
		case cfg.Stdout:
			if _, err := out.Write(file.HTML); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		case file.Written:
			sess.logger.Debug("wrote output",
				logging.FieldPath, sess.display(file.Path),
				logging.FieldOutput, sess.display(file.Output),
			)
		}
	}

	printSummary(report, sess, result, flags.summary)

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFilesFailed
	}
	return nil
}

func printSummary(w io.Writer, sess *session, result *runner.Result, detailed bool) {
	if detailed {
		fmt.Fprint(w, sess.styles.FormatSummary(result.Stats))
		return
	}
	fmt.Fprint(w, sess.styles.FormatSummaryOneLine(result.Stats))
}

// printDiff prints the change the rendered HTML of file would make to its
// current output file. A missing output file diffs as empty.
func printDiff(w io.Writer, sess *session, file runner.FileOutcome) error {
	output := runner.OutputPath(file.Path, sess.workDir, sess.cfg.Output)

	current, err := os.ReadFile(output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", output, err)
	}

	fmt.Fprint(w, sess.styles.FormatDiff(sess.display(output), current, file.HTML))
	return nil
}
