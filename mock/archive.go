package mock

import (
	"context"
	"time"

	"github.com/fwojciec/docmirror"
)

// Compile-time interface verification.
var (
	_ docmirror.PageStore       = (*PageStore)(nil)
	_ docmirror.IndexBuilder    = (*IndexBuilder)(nil)
	_ docmirror.ChangelogWriter = (*ChangelogWriter)(nil)
)

// PageStore is a mock implementation of docmirror.PageStore.
type PageStore struct {
	WriteIfChangedFn func(ctx context.Context, page *docmirror.Page) (*docmirror.Change, error)
}

func (s *PageStore) WriteIfChanged(ctx context.Context, page *docmirror.Page) (*docmirror.Change, error) {
	return s.WriteIfChangedFn(ctx, page)
}

// IndexBuilder is a mock implementation of docmirror.IndexBuilder.
type IndexBuilder struct {
	RebuildIndexFn func(ctx context.Context) ([]docmirror.IndexEntry, error)
}

func (b *IndexBuilder) RebuildIndex(ctx context.Context) ([]docmirror.IndexEntry, error) {
	return b.RebuildIndexFn(ctx)
}

// ChangelogWriter is a mock implementation of docmirror.ChangelogWriter.
type ChangelogWriter struct {
	WriteChangelogFn func(ctx context.Context, date time.Time, changes []*docmirror.Change) (string, error)
}

func (w *ChangelogWriter) WriteChangelog(ctx context.Context, date time.Time, changes []*docmirror.Change) (string, error) {
	return w.WriteChangelogFn(ctx, date, changes)
}
