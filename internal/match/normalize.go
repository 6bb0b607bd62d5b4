package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a key or command name for fuzzy matching: it is
// lowercased and separators (_, -, space) are dropped, so "_colorType",
// "color-type" and "ColorType" all normalize to "colortype".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// SameIgnoringSeparators reports whether a and b differ only in separators
// and letter case.
func SameIgnoringSeparators(a, b string) bool {
	return NormalizeIdent(a) == NormalizeIdent(b)
}
