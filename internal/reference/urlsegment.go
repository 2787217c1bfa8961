package reference

import "strings"

var (
	toSegment   = strings.NewReplacer(" ", ".", ":", "_", ",", "~")
	fromSegment = strings.NewReplacer(".", " ", "_", ":", "~", ",")
)

// Sanitize drops every character outside [A-Za-z0-9()._ ~:,-].
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if allowed(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allowed(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '(', ')', '.', '_', ' ', '~', ':', ',', '-':
		return true
	}
	return false
}

// EncodeForURL turns a passage display ("John 3:16,18") into a path segment
// ("John.3_16~18"). Display strings never contain ".", "_" or "~", which is
// what makes the substitution reversible.
func EncodeForURL(display string) string {
	return toSegment.Replace(Sanitize(display))
}

// DecodeFromURL reverses EncodeForURL.
func DecodeFromURL(segment string) string {
	return fromSegment.Replace(Sanitize(segment))
}
