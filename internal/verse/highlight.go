package verse

// IsHighlighted reports whether the verse labelled number falls within the
// highlighted tokens produced by reference.Resolve. A "-" token between two
// verses is an open interval between them; a trailing "-" runs to the end
// of the chapter. A range label is highlighted when either end is.
func IsHighlighted(number string, highlighted []string) bool {
	if number == "" || len(highlighted) == 0 {
		return false
	}
	label, ok := ParseLabel(number)
	if !ok {
		return false
	}
	if label.End != "" {
		return IsHighlighted(label.Start, highlighted) || IsHighlighted(label.End, highlighted)
	}

	key := SortKey(label.Start)
	last := len(highlighted) - 1
	for i, token := range highlighted {
		if token != "-" {
			if token == label.Start || SortKey(token) == key {
				return true
			}
			continue
		}
		if i == 0 {
			continue
		}
		prev := SortKey(highlighted[i-1])
		if i == last {
			if key > prev {
				return true
			}
			continue
		}
		if prev < key && key < SortKey(highlighted[i+1]) {
			return true
		}
	}
	return false
}
