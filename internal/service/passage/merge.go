package passage

import "github.com/heartmarshall/interlinear/internal/verse"

// versePair is one row of the merged verse list. A side the translation
// lacks is the zero Line.
type versePair struct {
	primary   verse.Line
	secondary verse.Line
}

func (p versePair) number() string {
	if p.primary.Number != "" {
		return p.primary.Number
	}
	return p.secondary.Number
}

// merge pairs verse lines of two translations by verse number. A verse only
// one side has is paired with an empty line. A superscription (verse 0)
// present on one side only is folded into that side's verse 1.
func merge(primary, secondary []verse.Line) []versePair {
	if hasVerse(primary, "0") != hasVerse(secondary, "0") {
		primary = foldSuperscription(primary)
		secondary = foldSuperscription(secondary)
	}

	out := make([]versePair, 0, max(len(primary), len(secondary)))
	i, j := 0, 0
	for i < len(primary) && j < len(secondary) {
		a, b := primary[i], secondary[j]
		switch {
		case a.Number == "" && b.Number == "":
			out = append(out, versePair{primary: a, secondary: b})
			i++
			j++
		case a.Number == "":
			out = append(out, versePair{primary: a})
			i++
		case b.Number == "":
			out = append(out, versePair{secondary: b})
			j++
		case a.SortKey() == b.SortKey():
			out = append(out, versePair{primary: a, secondary: b})
			i++
			j++
		case a.SortKey() < b.SortKey():
			out = append(out, versePair{primary: a})
			i++
		default:
			out = append(out, versePair{secondary: b})
			j++
		}
	}
	for ; i < len(primary); i++ {
		out = append(out, versePair{primary: primary[i]})
	}
	for ; j < len(secondary); j++ {
		out = append(out, versePair{secondary: secondary[j]})
	}
	return out
}

func hasVerse(lines []verse.Line, number string) bool {
	for _, l := range lines {
		if l.Number == number {
			return true
		}
	}
	return false
}

// foldSuperscription prepends verse 0 to verse 1. Lines without a verse 1
// are returned unchanged.
func foldSuperscription(lines []verse.Line) []verse.Line {
	zero, one := -1, -1
	for i, l := range lines {
		switch l.Number {
		case "0":
			zero = i
		case "1":
			one = i
		}
	}
	if zero < 0 || one < 0 {
		return lines
	}

	out := make([]verse.Line, 0, len(lines)-1)
	for i, l := range lines {
		switch i {
		case zero:
			continue
		case one:
			l.Text = lines[zero].Text + " " + l.Text
		}
		out = append(out, l)
	}
	return out
}
