// Package runner renders many Markdown files concurrently.
package runner

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/gridmark/pkg/config"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot)
	// considered Markdown. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Write stores rendered HTML next to each source or under
	// Config.Output.Dir. When false, files are only parsed and checked.
	Write bool

	// KeepHTML retains rendered HTML on each FileOutcome.
	KeepHTML bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// OutputPath returns where the rendered form of source is written. Without
// an output directory the file lands next to its source. With one, the path
// of source relative to workDir is mirrored below it; sources outside
// workDir are flattened to their base name.
func OutputPath(source, workDir string, out config.OutputConfig) string {
	ext := out.Extension
	if ext == "" {
		ext = config.DefaultOutputExtension
	}
	renamed := strings.TrimSuffix(source, filepath.Ext(source)) + ext

	if out.Dir == "" {
		return renamed
	}

	dir := out.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}

	rel, err := filepath.Rel(workDir, renamed)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(renamed)
	}
	return filepath.Join(dir, rel)
}
