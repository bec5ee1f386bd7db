// Package htmltomarkdown renders page bodies as Markdown using
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docmirror"
)

// Ensure Converter implements docmirror.Converter at compile time.
var _ docmirror.Converter = (*Converter)(nil)

// Converter renders the boilerplate-free HTML of ExtractResult.ContentHTML
// as a Markdown page body. It is only wired when Config.Markdown is set;
// otherwise pages keep the flattened text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert turns the extracted content HTML into a page body. The body is
// placed below the page header, so surrounding whitespace is trimmed and
// blank-line runs collapse the same way flattened text does.
func (c *Converter) Convert(contentHTML string) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", docmirror.Errorf(docmirror.EINVALID, "page has no content to convert")
	}

	body, err := c.conv.ConvertString(contentHTML)
	if err != nil {
		return "", docmirror.Errorf(docmirror.EINVALID, "markdown body: %v", err)
	}

	return docmirror.CollapseBlankLines(strings.TrimSpace(body)), nil
}
