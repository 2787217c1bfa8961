package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EncodeCSVField quotes a field the RFC 4180 way when it contains a comma, a
// quote or a line break, or starts or ends with whitespace. Quotes inside are
// doubled. Any string can be encoded.
func EncodeCSVField(s string) string {
	if !needsQuotes(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func needsQuotes(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, ",\"\r\n") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}
