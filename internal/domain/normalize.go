package domain

import (
	"strings"
)

// dashReplacer folds the dash glyphs people paste into citations to "-".
var dashReplacer = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
)

// NormalizeCitation prepares free-text citations for parsing:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - folds dash glyphs to "-"
//   - compresses runs of whitespace into one space
//
// Dots and colons are left alone; the reference parser decides which dots
// separate chapter and verse.
func NormalizeCitation(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(dashReplacer.Replace(text))

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\u00a0' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
