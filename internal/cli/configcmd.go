package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/pkg/config"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration gridmark would use in the current directory, after
merging the system, user, project and --config files with GRIDMARK_*
environment variables. The files that were read are listed in the header.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, &config.Config{})
			if err != nil {
				return err
			}

			header := "# gridmark configuration (defaults only)"
			if len(sess.loadedFrom) > 0 {
				header = "# gridmark configuration\n# Loaded from:\n#   " + strings.Join(sess.loadedFrom, "\n#   ")
			}

			out, err := sess.cfg.ToYAMLWithHeader(header)
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return fmt.Errorf("write configuration: %w", err)
			}
			return nil
		},
	}
}
