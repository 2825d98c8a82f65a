package valueobject

import (
	"strings"
	"unicode/utf8"
)

// maxTextLength bounds free-text fields before they reach any model prompt.
const maxTextLength = 1000

// SanitizeText strips characters with markup or quoting significance from
// user-entered text and caps its length. Applied to every free-text field
// before it is stored or embedded in a prompt.
func SanitizeText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch r {
		case '<', '>', '"', '\'', '&':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	out := sb.String()
	if len(out) > maxTextLength {
		// Back the cut up to a rune boundary so the result stays valid UTF-8.
		cut := maxTextLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return strings.TrimSpace(out)
}
