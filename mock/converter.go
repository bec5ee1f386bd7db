package mock

import "github.com/fwojciec/docmirror"

var (
	_ docmirror.Converter = (*Converter)(nil)
	_ docmirror.Differ    = (*Differ)(nil)
)

// Converter is a mock implementation of docmirror.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Differ is a mock implementation of docmirror.Differ.
type Differ struct {
	DiffFn func(before, after string) string
}

func (d *Differ) Diff(before, after string) string {
	return d.DiffFn(before, after)
}
