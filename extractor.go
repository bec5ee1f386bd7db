package docmirror

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, falling back to the page URL.
	Title string

	// Text is the visible text of the main content, one text node per line.
	Text string

	// ContentHTML is the main content as HTML with boilerplate removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract parses HTML and returns the title and visible body text.
	// The URL is used as the title when the page has none.
	Extract(html string, url string) (*ExtractResult, error)
}
