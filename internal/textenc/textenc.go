// Package textenc prepares raw file bytes for JSON decoding.
//
// Level files in the wild are UTF-8, but editors regularly prepend a byte
// order mark and the occasional file carries stray invalid bytes. Clean
// strips a leading BOM (decoding UTF-16 input when the BOM says so) and
// replaces ill-formed UTF-8 with U+FFFD.
package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// Clean returns data as BOM-free, well-formed UTF-8. Clean input is returned as is.
func Clean(data []byte) []byte {
	if !hasBOM(data) && utf8.Valid(data) {
		return data
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return data
	}

	return out
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) || bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
}
