// Package difflib implements docmirror.Differ with
// github.com/pmezard/go-difflib.
package difflib

import (
	"strings"

	"github.com/fwojciec/docmirror"
	"github.com/pmezard/go-difflib/difflib"
)

// Defaults for unified diff output.
const (
	DefaultContext  = 3
	DefaultMaxLines = 2000
)

// Ensure Differ implements docmirror.Differ at compile time.
var _ docmirror.Differ = (*Differ)(nil)

// Differ produces line-based unified diffs bounded to MaxLines output lines.
type Differ struct {
	Context  int
	MaxLines int
}

// NewDiffer creates a Differ with 3 lines of context and a 2000 line cap.
func NewDiffer() *Differ {
	return &Differ{
		Context:  DefaultContext,
		MaxLines: DefaultMaxLines,
	}
}

// Diff returns the unified diff from before to after with "old" and "new"
// as file names. Identical inputs produce an empty string.
func (d *Differ) Diff(before, after string) string {
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: "old",
		ToFile:   "new",
		Context:  d.Context,
	})
	if err != nil || out == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if d.MaxLines > 0 && len(lines) > d.MaxLines {
		lines = lines[:d.MaxLines]
	}
	return strings.Join(lines, "\n")
}

// splitLines splits s into lines, each terminated by a single "\n".
// A trailing newline does not start an extra empty line, and "" has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r") + "\n"
	}
	return lines
}
