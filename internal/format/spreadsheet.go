package format

import (
	"strconv"
	"strings"
)

const spreadsheetHeader = "Book,Chapter,Verse,Occurrence,Phrase,Variant"

type spreadsheetEmitter struct {
	opts SpreadsheetOptions
}

// Emit writes one row per divergent phrase, or per verse present in only one
// translation. Copyright notices are not part of spreadsheet output.
func (e spreadsheetEmitter) Emit(p *Passage) string {
	var b strings.Builder
	b.WriteString(spreadsheetHeader)
	b.WriteString("\r\n")

	book := p.Reference.Book
	chapter := strconv.Itoa(p.Reference.Chapter)

	row := func(number string, occurrence int, phrase, variant string) {
		fields := []string{book, chapter, number, strconv.Itoa(occurrence), phrase, variant}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(EncodeCSVField(f))
		}
		b.WriteString("\r\n")
	}

	for _, v := range p.Verses {
		a := v.Alignment
		if a == nil {
			continue
		}
		if a.SingleSided {
			switch {
			case v.Primary == "" && v.Secondary == "":
			case v.Primary == "":
				row(v.Number, 1, omitted(e.opts.OmissionMarker, v.Secondary), v.Secondary)
			case v.Secondary == "":
				row(v.Number, 1, v.Primary, omitted(e.opts.OmissionMarker, v.Primary))
			}
			continue
		}
		for _, seg := range a.Segments {
			if !seg.Divergent {
				continue
			}
			switch {
			case seg.IsOmission():
				row(v.Number, a.Occurrence(seg), seg.Primary, omitted(e.opts.OmissionMarker, seg.Primary))
			case seg.IsAddition() && seg.Neighbour != "":
				row(v.Number, a.Occurrence(seg), seg.Neighbour, addition(seg))
			case seg.IsAddition():
				row(v.Number, 1, omitted(e.opts.OmissionMarker, seg.Secondary), seg.Secondary)
			default:
				row(v.Number, a.Occurrence(seg), seg.Primary, seg.Secondary)
			}
		}
	}
	return b.String()
}
