package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and drops combining marks so
// accented names compare equal to their plain-ASCII forms.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var titleCaser = cases.Title(language.Und)

// FoldName reduces a raw attendee label to its canonical comparison form:
// diacritics stripped, lowercased, punctuation replaced by spaces, interior
// whitespace collapsed to single spaces. Returns "" when nothing usable
// remains.
func FoldName(raw string) string {
	stripped, _, err := transform.String(foldTransformer, raw)
	if err != nil {
		// Malformed UTF-8; fall back to the raw bytes.
		stripped = raw
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// TitleLabel renders a folded or raw label in display form.
func TitleLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return titleCaser.String(value)
}
