package docmirror

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// Differ produces a line-based unified diff between two texts.
type Differ interface {
	Diff(before, after string) string
}
