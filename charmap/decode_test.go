package charmap_test

import (
	"testing"

	"github.com/fwojciec/docmirror/charmap"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("keeps valid utf-8", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Olá, índice", charmap.Decode([]byte("Olá, índice")))
	})

	t.Run("falls back to latin-1", func(t *testing.T) {
		t.Parallel()

		// "Olá" encoded as ISO-8859-1.
		assert.Equal(t, "Olá", charmap.Decode([]byte{'O', 'l', 0xE1}))
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, charmap.Decode(nil))
	})
}
