package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gridmark/pkg/fsutil"
)

func TestReadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "song.md")
	require.NoError(t, os.WriteFile(path, []byte("|| Am ||\n"), 0o600))

	content, src, err := fsutil.ReadSource(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "|| Am ||\n", string(content))
	assert.Equal(t, path, src.Path)
	assert.Equal(t, int64(9), src.Size)
	assert.Equal(t, os.FileMode(0o600), src.Mode.Perm())

	_, _, err = fsutil.ReadSource(context.Background(), filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadSource(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.ReadSource(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSourceChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(t *testing.T, path string)
		want   bool
	}{
		{
			name:   "untouched",
			mutate: func(*testing.T, string) {},
			want:   false,
		},
		{
			name: "rewritten",
			mutate: func(t *testing.T, path string) {
				t.Helper()
				require.NoError(t, os.WriteFile(path, []byte("|| C7 | D ||\n"), 0o644))
			},
			want: true,
		},
		{
			name: "same size and time, new bytes",
			mutate: func(t *testing.T, path string) {
				t.Helper()
				info, err := os.Stat(path)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, []byte("|| Bm ||\n"), 0o644))
				require.NoError(t, os.Chtimes(path, time.Now(), info.ModTime()))
			},
			want: true,
		},
		{
			name: "deleted",
			mutate: func(t *testing.T, path string) {
				t.Helper()
				require.NoError(t, os.Remove(path))
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "song.md")
			require.NoError(t, os.WriteFile(path, []byte("|| Am ||\n"), 0o644))

			_, src, err := fsutil.ReadSource(ctx, path)
			require.NoError(t, err)

			tt.mutate(t, path)

			changed, err := src.Changed(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
		})
	}

	var nilSource *fsutil.Source
	_, err := nilSource.Changed(ctx)
	require.ErrorIs(t, err, fsutil.ErrNilSource)
}
