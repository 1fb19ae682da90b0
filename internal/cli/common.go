package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/internal/configloader"
	"github.com/yaklabco/gridmark/internal/logging"
	"github.com/yaklabco/gridmark/internal/ui/pretty"
	"github.com/yaklabco/gridmark/pkg/config"
)

// sourceFlags are flags shared by every command that parses Markdown.
// Typed settings are bound straight onto the CLI config layer; these need
// converting first.
type sourceFlags struct {
	flavor string
	ignore []string
}

func addSourceFlags(cmd *cobra.Command, cfg *config.Config, flags *sourceFlags) {
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor: commonmark, gfm (default commonmark)")
	cmd.Flags().StringVar(&cfg.HTML.DataAs, "data-as", "",
		`data-as attribute on grid tables, "none" to omit (default "songbook-grid")`)
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
}

func (f *sourceFlags) apply(cfg *config.Config) {
	cfg.Flavor = config.Flavor(f.flavor)
	if len(f.ignore) > 0 {
		cfg.Ignore = f.ignore
	}
}

// session is the state every command starts from.
type session struct {
	ctx        context.Context //nolint:containedctx // Scoped to one command invocation.
	logger     *log.Logger
	cfg        *config.Config
	loadedFrom []string
	workDir    string
	styles     *pretty.Styles
}

// newSession loads configuration with cliCfg as the highest layer.
func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}

	cfg := loaded.Config
	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldDataAs, cfg.HTML.DataAs,
		logging.FieldJobs, cfg.Jobs,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	return &session{
		ctx:        ctx,
		logger:     logger,
		cfg:        cfg,
		loadedFrom: loaded.LoadedFrom,
		workDir:    workDir,
		styles:     pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())),
	}, nil
}

// display shortens path to be relative to the working directory when it
// lies below it.
func (s *session) display(path string) string {
	rel, err := filepath.Rel(s.workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
