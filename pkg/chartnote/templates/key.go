package templates

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// KeyFor derives a template key from a display name or file name. Keys are
// lower-case ASCII-folded words joined by single dashes, the shape of the
// built-in keys ("horizontal-bar"). Accents are dropped after NFKD
// decomposition; any other run of non-alphanumeric runes becomes one dash.
func KeyFor(name string) string {
	var key strings.Builder
	pendingDash := false
	for _, r := range norm.NFKD.String(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && key.Len() > 0 {
				key.WriteByte('-')
			}
			pendingDash = false
			key.WriteRune(unicode.ToLower(r))
		case unicode.Is(unicode.Mn, r):
			// combining accent
		default:
			pendingDash = true
		}
	}
	return key.String()
}
