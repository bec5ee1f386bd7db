package docmirror

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

// PDF stub constants. PDF resources are never parsed; the archive only
// keeps a pointer to the original link.
const (
	PDFTitle    = "Documento PDF"
	PDFStubBody = "Este item é um PDF. Acesse o link acima para visualizar."
)

// DefaultSlug is used when a title has no alphanumeric characters.
const DefaultSlug = "pagina"

// MaxSlugLength bounds the title part of a page file name.
const MaxSlugLength = 80

// Page represents a converted documentation page.
type Page struct {
	URL   string
	Title string
	Body  string
	PDF   bool
}

// NewPDFPage returns the stub page used for PDF resources.
func NewPDFPage(rawURL string) *Page {
	return &Page{
		URL:   rawURL,
		Title: PDFTitle,
		Body:  PDFStubBody,
		PDF:   true,
	}
}

// Change describes a page file that was written during a run.
type Change struct {
	URL  string
	Path string // slash-separated, relative to the archive root
	Diff string
	Hash string
}

// PageStore persists pages, writing only when their content differs.
type PageStore interface {
	// WriteIfChanged formats the page and writes it to its derived path.
	// Returns a nil Change when the file already holds identical content.
	WriteIfChanged(ctx context.Context, page *Page) (*Change, error)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and replaces every run of characters outside
// [a-z0-9] with a single dash. Never returns an empty string.
func Slugify(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

// PageFileName derives the page file name from the URL host and the title.
// Example: https://docs.example.com/a, "Getting Started" → docs-example-com-getting-started.md
func PageFileName(rawURL, title string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := strings.ReplaceAll(u.Host, ".", "-")
	slug := Slugify(title)
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
	}

	return host + "-" + slug + ".md", nil
}

// IsPDF reports whether a resource should be treated as a PDF, either by
// its content type or by the extension of the URL path.
func IsPDF(contentType, rawURL string) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}

	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}
