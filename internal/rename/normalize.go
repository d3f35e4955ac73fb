package rename

import (
	"regexp"
	"strings"
)

var underscoreRuns = regexp.MustCompile(`_+`)

// NormalizeComponent maps a string into the filename-safe alphabet
// [a-zA-Z0-9-_]: every other rune (including spaces) becomes '_', runs of '_'
// collapse to one, and leading/trailing '_' are trimmed. Total over every
// input and idempotent.
func NormalizeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(underscoreRuns.ReplaceAllString(b.String(), "_"), "_")
}

// truncateRunes caps s at max runes.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
