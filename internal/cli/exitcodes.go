package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/internal/configloader"
	"github.com/yaklabco/gridmark/pkg/fsutil"
	"github.com/yaklabco/gridmark/pkg/runner"
)

// Exit codes for gridmark.
const (
	// ExitSuccess indicates every file was processed.
	ExitSuccess = 0

	// ExitFailures indicates the run completed but some files failed.
	ExitFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrFilesFailed is returned when one or more files could not be processed.
// The failures have already been reported.
var ErrFilesFailed = errors.New("some files failed")

// ErrInvalidUsage wraps errors caused by bad arguments or flags.
var ErrInvalidUsage = errors.New("invalid usage")

// ExitCodeFromResult determines the exit code of a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasFailures() {
		return ExitSuccess
	}
	return ExitFailures
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitFailures
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// usageArgs marks argument validation failures as ErrInvalidUsage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}
