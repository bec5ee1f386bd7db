package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/docmirror"
)

// Ensure SourceFile implements docmirror.SourceLoader at compile time.
var _ docmirror.SourceLoader = (*SourceFile)(nil)

// SourceFile reads the URL list from a newline-delimited text file.
type SourceFile struct {
	path string
}

// NewSourceFile creates a SourceFile reading from path.
func NewSourceFile(path string) *SourceFile {
	return &SourceFile{path: path}
}

// LoadSources returns the trimmed lines of the file in order, skipping
// blank lines and lines starting with '#'.
// Returns ENOTFOUND if the file does not exist.
func (s *SourceFile) LoadSources(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "sources file %s not found", s.path)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return urls, nil
}
