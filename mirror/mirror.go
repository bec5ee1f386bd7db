// Package mirror runs the mirroring pipeline: load the URL list, fetch and
// convert each page, write changed pages, rebuild the index and record the
// day's changelog.
package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/charmap"
)

// Mirror processes every source URL sequentially, one at a time.
type Mirror struct {
	Sources   docmirror.SourceLoader
	Fetcher   docmirror.Fetcher
	Robots    docmirror.RobotsPolicy // nil allows every URL
	Extractor docmirror.Extractor
	Converter docmirror.Converter // nil keeps flattened text bodies
	Store     docmirror.PageStore
	Index     docmirror.IndexBuilder
	Changelog docmirror.ChangelogWriter
	Logger    *slog.Logger

	// Delay is the courtesy pause after every URL that was fetched.
	Delay time.Duration

	// Now returns the run date. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a run.
type Result struct {
	URLs      int
	Updated   int
	Unchanged int
	Skipped   int
	Failed    int
	Changes   []*docmirror.Change
	Index     []docmirror.IndexEntry
	Changelog string // path of the written changelog, empty when nothing changed
}

// Run mirrors every source URL. Failures of a single URL are logged and do
// not stop the run; storage failures and context cancellation do.
func (m *Mirror) Run(ctx context.Context) (*Result, error) {
	logger := m.logger()
	result := &Result{}
	// The changelog is filed under the day the run started.
	today := m.now()

	urls, err := m.Sources.LoadSources(ctx)
	if docmirror.ErrorCode(err) == docmirror.ENOTFOUND {
		logger.Warn("sources missing", "err", docmirror.ErrorMessage(err))
		urls = nil
	} else if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	result.URLs = len(urls)

	if len(urls) == 0 {
		logger.Info("no sources")
		return result, m.rebuildIndex(ctx, result)
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := m.fetchPage(ctx, url)
		switch {
		case docmirror.ErrorCode(err) == docmirror.EDISALLOWED:
			logger.Info("skip", "url", url, "reason", docmirror.ErrorMessage(err))
			result.Skipped++
			continue
		case err != nil:
			logger.Error("error", "url", url, "code", docmirror.ErrorCode(err), "err", docmirror.ErrorMessage(err))
			result.Failed++
		default:
			change, err := m.Store.WriteIfChanged(ctx, page)
			if err != nil {
				return result, fmt.Errorf("write page for %s: %w", url, err)
			}
			if change != nil {
				logger.Info("updated", "url", url, "path", change.Path, "hash", change.Hash)
				result.Changes = append(result.Changes, change)
				result.Updated++
			} else {
				logger.Info("no change", "url", url)
				result.Unchanged++
			}
		}

		if err := sleep(ctx, m.Delay); err != nil {
			return result, err
		}
	}

	if err := m.rebuildIndex(ctx, result); err != nil {
		return result, err
	}

	if len(result.Changes) == 0 {
		logger.Info("no changes")
	} else {
		path, err := m.Changelog.WriteChangelog(ctx, today, result.Changes)
		if err != nil {
			return result, fmt.Errorf("write changelog: %w", err)
		}
		result.Changelog = path
	}

	logger.Info("summary",
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// fetchPage applies the robots gate, fetches the URL and converts it into
// a page.
func (m *Mirror) fetchPage(ctx context.Context, url string) (*docmirror.Page, error) {
	if m.Robots != nil {
		if err := m.Robots.Allowed(ctx, url); err != nil {
			return nil, err
		}
	}

	res, err := m.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return m.convert(res, url)
}

// convert turns a fetched resource into a page. PDFs are never parsed.
func (m *Mirror) convert(res *docmirror.Resource, url string) (*docmirror.Page, error) {
	if docmirror.IsPDF(res.ContentType, url) {
		return docmirror.NewPDFPage(url), nil
	}

	extracted, err := m.Extractor.Extract(charmap.Decode(res.Content), url)
	if err != nil {
		return nil, err
	}

	body := extracted.Text
	if m.Converter != nil {
		if body, err = m.Converter.Convert(extracted.ContentHTML); err != nil {
			return nil, err
		}
	}

	return &docmirror.Page{
		URL:   url,
		Title: extracted.Title,
		Body:  body,
	}, nil
}

func (m *Mirror) rebuildIndex(ctx context.Context, result *Result) error {
	entries, err := m.Index.RebuildIndex(ctx)
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	result.Index = entries
	return nil
}

func (m *Mirror) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *Mirror) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// sleep pauses for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
