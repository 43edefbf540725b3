package ident

import (
	"strings"
	"unicode"
)

// displayName derives a human-friendly name from a machine-style one:
// dots, dashes and underscores become spaces, and each word is
// capitalized ("jose-pc" becomes "Jose Pc").
func displayName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	capitalize := true
	for _, r := range name {
		switch r {
		case '.', '-', '_':
			b.WriteRune(' ')
			capitalize = true
		default:
			if capitalize {
				capitalize = false
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
