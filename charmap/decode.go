// Package charmap decodes fetched page bytes into text.
package charmap

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode returns content as a string. Valid UTF-8 is returned unchanged;
// anything else is decoded as ISO-8859-1. Decode never fails.
func Decode(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return strings.ToValidUTF8(string(content), "")
	}
	return string(decoded)
}
