package utils

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName cleans an untrusted display name before it is stored:
// NFC normalization, control characters dropped, surrounding and repeated
// whitespace collapsed, then HTML-escaped so the name is inert in any page.
func SanitizeName(name string) string {
	name = norm.NFC.String(name)

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			if unicode.IsSpace(r) {
				return ' '
			}
			return -1
		}
		return r
	}, name)

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return html.EscapeString(cleaned)
}
