package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/gridmark/pkg/runner"
)

// discovered runs Discover and returns paths relative to dir, slash-separated.
func discovered(t *testing.T, dir string, opts runner.Options) []string {
	t.Helper()

	opts.WorkingDir = dir
	files, err := runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func songbook(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.md":                 "",
		"songs/folk/ballad.md":     "",
		"songs/folk/reel.markdown": "",
		"songs/jazz/blues.MD":      "",
		"songs/jazz/notes.txt":     "",
		"drafts/wip.md":            "",
		"node_modules/pkg/x.md":    "",
		".git/HEAD.md":             "",
		"songs/.secret.md":         "",
	})
	return dir
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "defaults",
			want: []string{
				"drafts/wip.md", "index.md", "node_modules/pkg/x.md",
				"songs/folk/ballad.md", "songs/folk/reel.markdown", "songs/jazz/blues.MD",
			},
		},
		{
			name: "exclude directories",
			opts: runner.Options{ExcludeGlobs: []string{"node_modules/**", "drafts"}},
			want: []string{"index.md", "songs/folk/ballad.md", "songs/folk/reel.markdown", "songs/jazz/blues.MD"},
		},
		{
			name: "exclude by base name",
			opts: runner.Options{ExcludeGlobs: []string{"*.markdown", "**/jazz/**"}},
			want: []string{"drafts/wip.md", "index.md", "node_modules/pkg/x.md", "songs/folk/ballad.md"},
		},
		{
			name: "include",
			opts: runner.Options{IncludeGlobs: []string{"songs/**/*.{md,markdown}"}},
			want: []string{"songs/folk/ballad.md", "songs/folk/reel.markdown"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".txt"}},
			want: []string{"songs/jazz/notes.txt"},
		},
		{
			name: "explicit paths are deduplicated",
			opts: runner.Options{Paths: []string{"songs/folk", "songs/folk/ballad.md", "index.md", "songs/folk"}},
			want: []string{"index.md", "songs/folk/ballad.md", "songs/folk/reel.markdown"},
		},
		{
			name: "explicit file still honours excludes",
			opts: runner.Options{Paths: []string{"drafts/wip.md"}, ExcludeGlobs: []string{"drafts/**"}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := discovered(t, songbook(t), tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Discover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: songbook(t)})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/doc.md": ""})

	external := t.TempDir()
	writeTree(t, external, map[string]string{"external.md": ""})

	if err := os.Symlink(external, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "real", "doc.md"), filepath.Join(dir, "alias.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got := discovered(t, dir, runner.Options{})
	if !slices.Equal(got, []string{"alias.md", "real/doc.md"}) {
		t.Errorf("without FollowSymlinks = %v", got)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 3 || !slices.Contains(files, filepath.Join(external, "external.md")) {
		t.Errorf("with FollowSymlinks = %v", files)
	}
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	if got := runner.DefaultExtensions(); !slices.Equal(got, []string{".md", ".markdown"}) {
		t.Errorf("DefaultExtensions() = %v", got)
	}
}

func TestDiscover_NaturalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"song10.md":      "",
		"song2.md":       "",
		"song1.md":       "",
		"set2/intro.md":  "",
		"set10/intro.md": "",
	})

	want := []string{"set2/intro.md", "set10/intro.md", "song1.md", "song2.md", "song10.md"}
	if got := discovered(t, dir, runner.Options{}); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}
