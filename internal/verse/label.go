// Package verse handles verse labels: parsing them off chapter lines,
// ordering them and matching them against highlighted verse tokens.
package verse

import "strings"

// Label is a parsed verse label such as "16", "24b", "[7]" or "3-4".
// Brackets are dropped; End is empty unless the label spans two verses.
type Label struct {
	Start string
	End   string
}

// String renders the label without brackets.
func (l Label) String() string {
	if l.End == "" {
		return l.Start
	}
	return l.Start + "-" + l.End
}

// ParseLabel accepts ["["] digits[letter] ["-" digits[letter]] ["]"], where
// the brackets come as a pair or not at all.
func ParseLabel(s string) (Label, bool) {
	if s == "" {
		return Label{}, false
	}
	if s[0] == '[' || s[len(s)-1] == ']' {
		if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
			return Label{}, false
		}
		s = s[1 : len(s)-1]
	}

	start, rest, ok := scanNumber(s)
	if !ok {
		return Label{}, false
	}
	if rest == "" {
		return Label{Start: start}, true
	}
	if rest[0] != '-' {
		return Label{}, false
	}
	end, rest, ok := scanNumber(rest[1:])
	if !ok || rest != "" {
		return Label{}, false
	}
	return Label{Start: start, End: end}, true
}

// scanNumber reads digits followed by at most one ASCII letter.
func scanNumber(s string) (number, rest string, ok bool) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	if i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[:i], s[i:], true
}

// isCandidate reports whether a line's first field looks like it was meant
// as a verse label, valid or not.
func isCandidate(field string) bool {
	if field == "" {
		return false
	}
	if isDigit(field[0]) {
		return true
	}
	return len(field) > 1 && field[0] == '[' && isDigit(field[1])
}

// StripLabel splits a line into its verse label and body. An invalid label
// is dropped and reported as absent; a line without a label keeps its text.
func StripLabel(line string) (number, body string) {
	line = strings.TrimLeft(line, " \t")
	field, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		field, rest = line[:i], strings.TrimLeft(line[i+1:], " \t")
	}
	if !isCandidate(field) {
		return "", line
	}
	label, ok := ParseLabel(field)
	if !ok {
		return "", rest
	}
	return label.String(), rest
}

// SortKey pads a verse number so that ordinal string comparison follows
// verse order: plain numbers get a "-" suffix, which sorts before letters,
// and everything is left-padded with "0" to four characters. For a range
// label the start verse is used.
func SortKey(number string) string {
	if label, ok := ParseLabel(number); ok {
		number = label.Start
	}
	if number != "" && allDigits(number) {
		number += "-"
	}
	if len(number) < 4 {
		number = strings.Repeat("0", 4-len(number)) + number
	}
	return number
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
