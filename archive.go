package docmirror

import (
	"context"
	"time"
)

// IndexEntry is a single page listed in the index.
type IndexEntry struct {
	Title string
	Path  string // slash-separated, relative to the archive root
}

// IndexBuilder regenerates the index from the pages present on disk.
type IndexBuilder interface {
	// RebuildIndex lists every page file sorted by file name and rewrites
	// the index document. Returns the listed entries.
	RebuildIndex(ctx context.Context) ([]IndexEntry, error)
}

// ChangelogWriter records the changes of a run.
type ChangelogWriter interface {
	// WriteChangelog writes one document keyed by date, replacing any
	// existing document for the same date. Returns the written path.
	WriteChangelog(ctx context.Context, date time.Time, changes []*Change) (string, error)
}
