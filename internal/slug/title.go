package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title turns an underscore-delimited key into a display title:
// "летние_платья" becomes "Летние Платья". Only the first letter of each
// whitespace-separated word is upper-cased; hyphens, slashes, brackets and
// digits do not start a new word. Empty segments are kept, so "a__b"
// becomes "A  B".
func Title(key string) string {
	segments := strings.Split(key, "_")

	// A Caser is not safe for concurrent use.
	upper := cases.Upper(language.Russian)
	for i, segment := range segments {
		segments[i] = capitalizeWords(upper, segment)
	}

	return strings.Join(segments, " ")
}

func capitalizeWords(upper cases.Caser, segment string) string {
	var b strings.Builder
	b.Grow(len(segment))

	wordStart := true
	for len(segment) > 0 {
		r, size := utf8.DecodeRuneInString(segment)
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
			wordStart = true
		case wordStart:
			b.WriteString(upper.String(segment[:size]))
			wordStart = false
		default:
			b.WriteString(segment[:size])
		}
		segment = segment[size:]
	}

	return b.String()
}
