// Package fs provides the file-based archive: the URL list, page files,
// the index and the dated changelogs.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmirror"
)

// Ensure Archive implements the storage interfaces at compile time.
var (
	_ docmirror.PageStore       = (*Archive)(nil)
	_ docmirror.IndexBuilder    = (*Archive)(nil)
	_ docmirror.ChangelogWriter = (*Archive)(nil)
)

// Archive stores page files, the index and changelogs under a root directory.
type Archive struct {
	root       string
	pagesDir   string
	changesDir string
	indexFile  string
	indexTitle string
	differ     docmirror.Differ
}

// NewArchive creates an Archive laid out as described by cfg.
// The differ produces the diffs attached to written pages.
func NewArchive(cfg docmirror.Config, differ docmirror.Differ) *Archive {
	return &Archive{
		root:       cfg.Root,
		pagesDir:   cfg.PagesDir,
		changesDir: cfg.ChangesDir,
		indexFile:  cfg.IndexFile,
		indexTitle: cfg.IndexTitle,
		differ:     differ,
	}
}

// Open creates the pages and changes directories.
func (a *Archive) Open() error {
	for _, dir := range []string{a.pagesPath(), a.changesPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func (a *Archive) pagesPath() string {
	return filepath.Join(a.root, a.pagesDir)
}

func (a *Archive) changesPath() string {
	return filepath.Join(a.root, a.changesDir)
}

// relPath returns the slash-separated path of name inside dir, relative
// to the archive root.
func relPath(dir, name string) string {
	return path.Join(filepath.ToSlash(dir), name)
}

// WriteIfChanged writes the formatted page when it differs from the file
// on disk. Unchanged pages are not touched and return a nil Change.
func (a *Archive) WriteIfChanged(ctx context.Context, page *docmirror.Page) (*docmirror.Change, error) {
	name, err := docmirror.PageFileName(page.URL, page.Title)
	if err != nil {
		return nil, err
	}
	fullPath := filepath.Join(a.pagesPath(), name)

	content := docmirror.FormatPage(page)

	old, err := os.ReadFile(fullPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", fullPath, err)
	}
	if string(old) == content {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", fullPath, err)
	}

	return &docmirror.Change{
		URL:  page.URL,
		Path: relPath(a.pagesDir, name),
		Diff: a.differ.Diff(string(old), content),
		Hash: computeHash(content),
	}, nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
