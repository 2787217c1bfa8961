package format

import (
	"strconv"
	"strings"
)

type textEmitter struct{}

// Emit writes a "Book Chapter" heading followed by "n text" lines.
func (textEmitter) Emit(p *Passage) string {
	var b strings.Builder
	b.WriteString(p.Reference.ChapterReference.String())
	b.WriteString("\n\n")
	for _, v := range p.Verses {
		if v.Primary == "" {
			continue
		}
		if v.Number != "" {
			b.WriteString(v.Number)
			b.WriteByte(' ')
		}
		b.WriteString(v.Primary)
		b.WriteByte('\n')
	}
	writeTextCopyrights(&b, p.Copyrights)
	return b.String()
}

type accordanceEmitter struct{}

// Emit writes "Abbrev Chapter:n text" lines.
func (accordanceEmitter) Emit(p *Passage) string {
	abbrev := p.Abbrev
	if abbrev == "" {
		abbrev = p.Reference.Book
	}
	prefix := abbrev + " " + strconv.Itoa(p.Reference.Chapter) + ":"

	var b strings.Builder
	for _, v := range p.Verses {
		if v.Primary == "" {
			continue
		}
		if v.Number != "" {
			b.WriteString(prefix)
			b.WriteString(v.Number)
			b.WriteByte(' ')
		}
		b.WriteString(v.Primary)
		b.WriteByte('\n')
	}
	writeTextCopyrights(&b, p.Copyrights)
	return b.String()
}

func writeTextCopyrights(b *strings.Builder, notices []string) {
	for _, c := range notices {
		b.WriteByte('\n')
		b.WriteString(c)
		b.WriteByte('\n')
	}
}
