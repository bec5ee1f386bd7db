package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docmirror"
)

// WriteChangelog writes the changes to <changes>/<YYYY-MM-DD>.md,
// replacing an earlier changelog of the same day.
func (a *Archive) WriteChangelog(ctx context.Context, date time.Time, changes []*docmirror.Change) (string, error) {
	if len(changes) == 0 {
		return "", docmirror.Errorf(docmirror.EINVALID, "changelog requires at least one change")
	}

	if err := os.MkdirAll(a.changesPath(), 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", a.changesPath(), err)
	}

	path := filepath.Join(a.changesPath(), date.Format(docmirror.DateLayout)+".md")
	content := docmirror.FormatChangelog(date, changes)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
