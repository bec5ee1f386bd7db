// Package goquery extracts page titles and visible text from HTML using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docmirror.Extractor at compile time.
var _ docmirror.Extractor = (*Extractor)(nil)

// BoilerplateTags are dropped from every page together with their content.
var BoilerplateTags = []string{"nav", "header", "footer", "script", "style", "noscript"}

// Extractor pulls the title and visible text out of an HTML page,
// restricting extraction to <main> when the page has one.
type Extractor struct {
	skip map[string]bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// KeepNoscript keeps <noscript> content in the extracted text.
func KeepNoscript() Option {
	return func(e *Extractor) {
		delete(e.skip, "noscript")
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{skip: make(map[string]bool)}
	for _, tag := range BoilerplateTags {
		e.skip[tag] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns its title, visible text and cleaned
// content HTML. The parsed tree is never modified.
func (e *Extractor) Extract(rawHTML string, url string) (*docmirror.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Selection
	if mainSel := e.mainContainer(doc); mainSel.Length() > 0 {
		container = mainSel
	}

	var lines []string
	for _, n := range container.Nodes {
		lines = e.appendText(lines, n)
	}
	text := docmirror.CollapseBlankLines(strings.Join(lines, "\n"))

	contentHTML, err := e.cleanHTML(container)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "failed to render content: %v", err)
	}

	return &docmirror.ExtractResult{
		Title:       title(doc, container, url),
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}

// mainContainer returns the first <main> that survives boilerplate
// removal. A <main> nested in a skipped element is ignored.
func (e *Extractor) mainContainer(doc *goquery.Document) *goquery.Selection {
	skipped := make([]string, 0, len(e.skip))
	for tag := range e.skip {
		skipped = append(skipped, tag)
	}
	sel := strings.Join(skipped, ",")

	return doc.Find("main").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return sel == "" || s.ParentsFiltered(sel).Length() == 0
	}).First()
}

// title prefers a <title> inside the container, then the document title,
// then the URL.
func title(doc *goquery.Document, container *goquery.Selection, url string) string {
	if t := strings.TrimSpace(container.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return url
}

// appendText walks n depth-first and appends every trimmed, non-empty text
// node outside skipped elements.
func (e *Extractor) appendText(lines []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			lines = append(lines, s)
		}
		return lines
	case html.ElementNode:
		if e.skipped(n.Data) {
			return lines
		}
	case html.CommentNode, html.DoctypeNode:
		return lines
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		lines = e.appendText(lines, c)
	}
	return lines
}

// skipped reports whether an element's text is excluded from the body.
// Document metadata is never body text.
func (e *Extractor) skipped(tag string) bool {
	return tag == "head" || tag == "title" || e.skip[tag]
}

// cleanHTML renders a copy of the container without skipped elements.
func (e *Extractor) cleanHTML(container *goquery.Selection) (string, error) {
	clone := container.Clone()

	var removed []*html.Node
	for _, root := range clone.Nodes {
		collectSkipped(root, e.skipped, &removed)
	}
	for _, n := range removed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}

	var b strings.Builder
	for _, n := range clone.Nodes {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func collectSkipped(n *html.Node, skipped func(string) bool, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && skipped(c.Data) {
			*out = append(*out, c)
			continue
		}
		collectSkipped(c, skipped, out)
	}
}
