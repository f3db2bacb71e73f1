package nav

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Humanize turns a hyphenated slug into a display label:
// "service-accounts" becomes "Service Accounts". Only the first character of
// each segment changes case.
func Humanize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
