package format

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const nbsp = "&nbsp;"

type htmlEmitter struct {
	opts  HTMLOptions
	debug bool
}

// Emit renders verse spans. Divergent phrases are stacked in sup-sub spans
// whose title attributes carry the translation codes.
func (e htmlEmitter) Emit(p *Passage) string {
	var b strings.Builder
	b.WriteString(`<div class="passage">` + "\n")
	for _, v := range p.Verses {
		e.verse(&b, p, v)
	}
	for _, c := range p.Copyrights {
		b.WriteString(`<p class="copyright">`)
		b.WriteString(html.EscapeString(c))
		b.WriteString("</p>\n")
	}
	b.WriteString("</div>\n")

	if !e.opts.FullDocument {
		return b.String()
	}
	return document(p.Reference.Display, e.opts.Stylesheet, b.String())
}

func (e htmlEmitter) verse(b *strings.Builder, p *Passage, v Verse) {
	if e.debug && v.Alignment != nil {
		a := v.Alignment
		fmt.Fprintf(b, "<!-- verse %s: words %d/%d, common %d, divergent %d, reverse %t -->\n",
			commentSafe(v.Number), a.WordCount1, a.WordCount2, a.WordsInCommon, a.DivergentPhrases, a.Reverse)
	}

	if v.Highlighted {
		b.WriteString("<mark>")
	}
	if v.Number != "" {
		id := html.EscapeString(v.Number)
		fmt.Fprintf(b, `<span class="verse" id="v%s"><sup>%s</sup> `, id, id)
	} else {
		b.WriteString(`<span class="verse">`)
	}

	switch {
	case v.Alignment == nil:
		b.WriteString(italicHTML(html.EscapeString(v.Primary)))
	case v.Alignment.SingleSided:
		stacked(b, p, v.Primary, v.Secondary)
	default:
		for i, seg := range v.Alignment.Segments {
			if i > 0 {
				b.WriteByte(' ')
			}
			if seg.Divergent {
				stacked(b, p, seg.Primary, seg.Secondary)
				continue
			}
			b.WriteString(italicHTML(html.EscapeString(seg.Primary)))
		}
	}

	b.WriteString("</span>")
	if v.Highlighted {
		b.WriteString("</mark>")
	}
	b.WriteByte('\n')
}

// stacked writes one interlinear gloss. A missing side is a non-breaking space.
func stacked(b *strings.Builder, p *Passage, primary, secondary string) {
	b.WriteString(`<span class="sup-sub"><span class="sup" title="`)
	b.WriteString(html.EscapeString(p.Primary))
	b.WriteString(`">`)
	b.WriteString(side(primary))
	b.WriteString(`</span><span class="sub" title="`)
	b.WriteString(html.EscapeString(p.Secondary))
	b.WriteString(`">`)
	b.WriteString(side(secondary))
	b.WriteString("</span></span>")
}

func side(s string) string {
	if s == "" {
		return nbsp
	}
	return italicHTML(html.EscapeString(s))
}

// italicHTML turns "[...]" into <em> elements. A run split across segments
// is closed at the end of the segment and reopened at its start.
func italicHTML(s string) string {
	if !strings.ContainsAny(s, "[]") {
		return s
	}
	var b strings.Builder
	open := false
	if i, j := strings.IndexByte(s, ']'), strings.IndexByte(s, '['); i >= 0 && (j < 0 || i < j) {
		b.WriteString("<em>")
		open = true
	}
	for _, r := range s {
		switch r {
		case '[':
			if !open {
				b.WriteString("<em>")
				open = true
			}
		case ']':
			if open {
				b.WriteString("</em>")
				open = false
			}
		default:
			b.WriteRune(r)
		}
	}
	if open {
		b.WriteString("</em>")
	}
	return b.String()
}

func commentSafe(s string) string {
	return strings.ReplaceAll(s, "--", "")
}

func document(title string, sheet Stylesheet, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(sheet.CSS())
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
