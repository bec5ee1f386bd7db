package docmirror

import (
	"regexp"
	"strings"
	"time"
)

// EmptyIndexMessage replaces the page list when the archive has no pages.
const EmptyIndexMessage = "(Sem páginas ainda. Verifique o sources.txt e rode o workflow.)"

// DateLayout is the format of changelog dates and file names.
const DateLayout = "2006-01-02"

var blankLines = regexp.MustCompile(`\n{3,}`)

// CollapseBlankLines reduces runs of three or more newlines to exactly two,
// keeping paragraph breaks.
func CollapseBlankLines(s string) string {
	return blankLines.ReplaceAllString(s, "\n\n")
}

// FormatPage renders a page in the archive Markdown layout.
func FormatPage(page *Page) string {
	label := "Fonte"
	if page.PDF {
		label = "Fonte (PDF)"
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(page.Title)
	b.WriteString("\n\n")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(page.URL)
	b.WriteString("\n\n---\n\n")
	b.WriteString(page.Body)
	b.WriteString("\n")
	return b.String()
}

// FormatIndex renders the index document listing every archived page.
// Entry paths are relative to the archive root and linked site-relative.
func FormatIndex(title string, entries []IndexEntry) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(EmptyIndexMessage)
		b.WriteString("\n")
		return b.String()
	}

	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, "- ["+e.Title+"](/"+e.Path+")")
	}
	b.WriteString(strings.Join(items, "\n"))
	b.WriteString("\n")
	return b.String()
}

// FormatChangelog renders the changelog of one run day.
func FormatChangelog(date time.Time, changes []*Change) string {
	blocks := make([]string, 0, len(changes)+1)
	blocks = append(blocks, "# Mudanças em "+date.Format(DateLayout)+"\n")
	for _, c := range changes {
		blocks = append(blocks, "## "+c.URL+"\nArquivo: `/"+c.Path+"`\n\n```diff\n"+c.Diff+"\n```\n")
	}
	return strings.Join(blocks, "\n")
}
