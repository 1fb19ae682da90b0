package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/yaklabco/gridmark/internal/cli"
	"github.com/yaklabco/gridmark/internal/configloader"
	"github.com/yaklabco/gridmark/pkg/fsutil"
	"github.com/yaklabco/gridmark/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gridmark" {
		t.Errorf("expected Use to be 'gridmark', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"render", "check", "events", "preview", "init", "config", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"render": {
			"flavor", "data-as", "jobs", "ignore", "unsafe", "xhtml",
			"hard-wraps", "output-dir", "ext", "stdout", "summary", "diff",
		},
		"check":   {"flavor", "data-as", "jobs", "ignore", "quiet"},
		"events":  {"flavor", "format", "flat"},
		"preview": {"flavor", "width"},
		"init":    {"force", "format", "output"},
	}

	cmd := cli.NewRootCommand(testInfo())

	for name, flags := range tests {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}

		for _, flagName := range flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, name)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"gridmark", "1.2.3", "abc123", "2024-01-01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("version output %q does not contain %q", out.String(), want)
		}
	}
}

func TestRenderCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	renderCmd, _, err := cmd.Find([]string{"render"})
	if err != nil {
		t.Fatalf("render command not found: %v", err)
	}

	if err := renderCmd.Args(renderCmd, []string{"verse.md", "chorus.md", "songs/"}); err != nil {
		t.Errorf("render command should accept arbitrary args, got error: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"files failed", cli.ErrFilesFailed, cli.ExitFailures},
		{"invalid usage", fmt.Errorf("%w: bad flag", cli.ErrInvalidUsage), cli.ExitInvalidUsage},
		{
			"config validation",
			fmt.Errorf("load configuration: %w", &configloader.ValidationError{Field: "flavor", Message: "invalid"}),
			cli.ExitConfigError,
		},
		{"missing path", fmt.Errorf("stat x.md: %w", os.ErrNotExist), cli.ExitIOError},
		{"unreadable source", fmt.Errorf("read: %w", fsutil.ErrPermissionDenied), cli.ExitIOError},
		{"anything else", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	if got := cli.ExitCodeFromResult(nil); got != cli.ExitSuccess {
		t.Errorf("nil result: got %d, want %d", got, cli.ExitSuccess)
	}

	ok := &runner.Result{Stats: runner.Stats{FilesProcessed: 2}}
	if got := cli.ExitCodeFromResult(ok); got != cli.ExitSuccess {
		t.Errorf("clean result: got %d, want %d", got, cli.ExitSuccess)
	}

	failed := &runner.Result{Stats: runner.Stats{FilesProcessed: 1, FilesFailed: 1}}
	if got := cli.ExitCodeFromResult(failed); got != cli.ExitFailures {
		t.Errorf("failed result: got %d, want %d", got, cli.ExitFailures)
	}
}
