package format

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const apparatusSeparator = " | "

type apparatusEmitter struct {
	opts ApparatusOptions
}

// Emit lists each divergent phrase as
// "<strong>primary</strong>occurrence secondary | ", grouped under the verse
// number. Verses without divergence are skipped.
func (e apparatusEmitter) Emit(p *Passage) string {
	var b strings.Builder
	for _, v := range p.Verses {
		if v.Alignment == nil {
			continue
		}
		entries := e.entries(v)
		if len(entries) == 0 {
			continue
		}
		if v.Number != "" {
			b.WriteString("<strong>" + html.EscapeString(v.Number) + "</strong> ")
		}
		for _, entry := range entries {
			b.WriteString(entry)
			b.WriteString(apparatusSeparator)
		}
	}
	out := strings.TrimSuffix(b.String(), apparatusSeparator)

	for _, c := range p.Copyrights {
		out += "\n<p>" + html.EscapeString(c) + "</p>"
	}
	return out
}

func (e apparatusEmitter) entries(v Verse) []string {
	a := v.Alignment
	if a.SingleSided {
		switch {
		case a.Segments[0].Primary == "" && a.Segments[0].Secondary == "":
			return nil
		case a.Segments[0].Primary == "":
			return []string{e.entry(omitted(e.opts.OmissionMarker, esc(v.Secondary)), "", esc(v.Secondary))}
		case a.Segments[0].Secondary == "":
			return []string{e.entry(esc(v.Primary), "", omitted(e.opts.OmissionMarker, esc(v.Primary)))}
		}
	}

	var out []string
	for _, seg := range a.Segments {
		if !seg.Divergent {
			continue
		}
		occurrence := ""
		if e.opts.OccurrenceMarker != "" && a.Repeated(seg) {
			occurrence = strings.ReplaceAll(e.opts.OccurrenceMarker, MacroOccurrence, strconv.Itoa(a.Occurrence(seg)))
		}

		switch {
		case seg.IsOmission():
			out = append(out, e.entry(esc(seg.Primary), occurrence, omitted(e.opts.OmissionMarker, esc(seg.Primary))))
		case seg.IsAddition() && e.opts.RenderNeighbourForAddition && seg.Neighbour != "":
			out = append(out, e.entry(esc(seg.Neighbour), occurrence, esc(addition(seg))))
		case seg.IsAddition():
			out = append(out, e.entry(omitted(e.opts.OmissionMarker, esc(seg.Secondary)), "", esc(seg.Secondary)))
		default:
			out = append(out, e.entry(esc(seg.Primary), occurrence, esc(seg.Secondary)))
		}
	}
	return out
}

func (e apparatusEmitter) entry(primary, occurrence, secondary string) string {
	return "<strong>" + primary + "</strong>" + occurrence + " " + secondary
}

func esc(s string) string {
	return italicHTML(html.EscapeString(s))
}
