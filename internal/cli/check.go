package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/pkg/config"
	"github.com/yaklabco/gridmark/pkg/runner"
)

type checkFlags struct {
	sourceFlags
	quiet bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse Markdown files and verify their grids",
		Long: `Parse Markdown files and verify that every grid resolves into a balanced,
well-ordered event stream, without writing any output.

Exits with a non-zero status if any file cannot be read, parsed or verified.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addSourceFlags(cmd, &cfg, &flags.sourceFlags)
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "only report failures")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags) error {
	flags.apply(cliCfg)

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	checkRunner := runner.New(runner.NewParser(sess.cfg, sess.logger), sess.logger)
	result, err := checkRunner.Run(sess.ctx, runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		ExcludeGlobs: sess.cfg.Ignore,
		Jobs:         sess.cfg.Jobs,
		Config:       sess.cfg,
	})
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(cmd.ErrOrStderr(), sess.styles.FormatFailure(sess.display(file.Path), file.Error))
			continue
		}
		if !flags.quiet {
			fmt.Fprintln(out, sess.styles.FormatFileHeader(sess.display(file.Path), file.Tables))
		}
	}
	if !flags.quiet {
		printSummary(out, sess, result, false)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFilesFailed
	}
	return nil
}
