package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docmirror"
)

// RebuildIndex rewrites the index from the *.md files in the pages
// directory, sorted by file name. Safe to run with no pages and no changes.
func (a *Archive) RebuildIndex(ctx context.Context) ([]docmirror.IndexEntry, error) {
	dirEntries, err := os.ReadDir(a.pagesPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("list %s: %w", a.pagesPath(), err)
	}

	// os.ReadDir returns entries sorted by file name.
	var entries []docmirror.IndexEntry
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".md" {
			continue
		}
		entries = append(entries, docmirror.IndexEntry{
			Title: pageTitle(filepath.Join(a.pagesPath(), de.Name())),
			Path:  relPath(a.pagesDir, de.Name()),
		})
	}

	indexPath := filepath.Join(a.root, a.indexFile)
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(indexPath), err)
	}
	content := docmirror.FormatIndex(a.indexTitle, entries)
	if err := os.WriteFile(indexPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", indexPath, err)
	}

	return entries, nil
}

// pageTitle returns the heading on the first line of the file, or the
// file name without extension when the first line is not a heading.
func pageTitle(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return stem
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return stem
	}
	first := scanner.Text()
	if !strings.HasPrefix(first, "#") {
		return stem
	}
	return strings.TrimSpace(strings.TrimLeft(first, "# "))
}
