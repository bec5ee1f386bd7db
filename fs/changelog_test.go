package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_WriteChangelog(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	changes := []*docmirror.Change{
		{URL: "https://example.com/a", Path: "pages/example-com-foo.md", Diff: "+Hello"},
	}

	t.Run("writes changelog keyed by date", func(t *testing.T) {
		t.Parallel()

		archive, cfg := newArchive(t)

		path, err := archive.WriteChangelog(context.Background(), date, changes)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfg.ChangesPath(), "2025-06-01.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, docmirror.FormatChangelog(date, changes), string(content))
	})

	t.Run("second run on the same day overwrites", func(t *testing.T) {
		t.Parallel()

		archive, _ := newArchive(t)
		_, err := archive.WriteChangelog(context.Background(), date, changes)
		require.NoError(t, err)

		later := []*docmirror.Change{
			{URL: "https://example.com/b", Path: "pages/example-com-bar.md", Diff: "+Bye"},
		}
		path, err := archive.WriteChangelog(context.Background(), date, later)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "https://example.com/a")
		assert.Contains(t, string(content), "https://example.com/b")
	})

	t.Run("rejects empty change set", func(t *testing.T) {
		t.Parallel()

		archive, cfg := newArchive(t)

		_, err := archive.WriteChangelog(context.Background(), date, nil)

		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
		dirEntries, err := os.ReadDir(cfg.ChangesPath())
		require.NoError(t, err)
		assert.Empty(t, dirEntries)
	})
}
