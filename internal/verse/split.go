package verse

import "strings"

// Line is one verse line of a chapter.
type Line struct {
	// Number is the verse label without brackets, or empty when the line
	// had no valid label.
	Number string
	Text   string
}

// SortKey returns the padded ordinal key of the line's verse number.
func (l Line) SortKey() string {
	return SortKey(l.Number)
}

// Split breaks chapter text into verse lines, skipping blank lines.
func Split(text string) []Line {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimRight(r, " \t\r")
		if strings.TrimSpace(r) == "" {
			continue
		}
		number, body := StripLabel(r)
		lines = append(lines, Line{Number: number, Text: body})
	}
	return lines
}
