package docmirror_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lower-cases words", in: "Getting Started", want: "getting-started"},
		{name: "collapses symbol runs", in: "API -- Reference (v2)", want: "api-reference-v2"},
		{name: "trims leading and trailing dashes", in: "  !Hello!  ", want: "hello"},
		{name: "drops non-ascii letters", in: "Café Menu", want: "caf-menu"},
		{name: "only symbols uses placeholder", in: "!!! --- ???", want: docmirror.DefaultSlug},
		{name: "empty uses placeholder", in: "", want: docmirror.DefaultSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docmirror.Slugify(tt.in))
		})
	}
}

func TestPageFileName(t *testing.T) {
	t.Parallel()

	t.Run("joins dashed host and slug", func(t *testing.T) {
		t.Parallel()

		got, err := docmirror.PageFileName("https://example.com/a", "Foo")

		require.NoError(t, err)
		assert.Equal(t, "example-com-foo.md", got)
	})

	t.Run("is deterministic for the same URL and title", func(t *testing.T) {
		t.Parallel()

		first, err := docmirror.PageFileName("https://docs.example.org/x/y?z=1", "Some Title")
		require.NoError(t, err)
		second, err := docmirror.PageFileName("https://docs.example.org/x/y?z=1", "Some Title")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "docs-example-org-some-title.md", first)
	})

	t.Run("truncates slug to 80 characters", func(t *testing.T) {
		t.Parallel()

		got, err := docmirror.PageFileName("https://example.com/", strings.Repeat("a", 200))

		require.NoError(t, err)
		assert.Equal(t, "example-com-"+strings.Repeat("a", 80)+".md", got)
	})

	t.Run("title change produces a different file", func(t *testing.T) {
		t.Parallel()

		before, err := docmirror.PageFileName("https://example.com/a", "Old Title")
		require.NoError(t, err)
		after, err := docmirror.PageFileName("https://example.com/a", "New Title")
		require.NoError(t, err)

		assert.NotEqual(t, before, after)
	})

	t.Run("rejects unparseable URL", func(t *testing.T) {
		t.Parallel()

		_, err := docmirror.PageFileName("http://[::1", "Foo")

		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
	})
}

func TestIsPDF(t *testing.T) {
	t.Parallel()

	assert.True(t, docmirror.IsPDF("application/pdf", "https://example.com/download"))
	assert.True(t, docmirror.IsPDF("text/html", "https://example.com/manual.PDF"))
	assert.True(t, docmirror.IsPDF("", "https://example.com/manual.pdf?dl=1"))
	assert.False(t, docmirror.IsPDF("text/html; charset=utf-8", "https://example.com/pdf-guide"))
}

func TestNewPDFPage(t *testing.T) {
	t.Parallel()

	page := docmirror.NewPDFPage("https://example.com/manual.pdf")

	assert.Equal(t, docmirror.PDFTitle, page.Title)
	assert.Equal(t, docmirror.PDFStubBody, page.Body)
	assert.True(t, page.PDF)
}
