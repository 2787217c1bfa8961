// Package format renders assembled passages as text, Accordance text, HTML,
// a critical apparatus or a spreadsheet.
package format

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/interlinear/internal/align"
	"github.com/heartmarshall/interlinear/internal/domain"
)

// Verse is one verse of an assembled passage.
type Verse struct {
	// Number is the verse label, empty for unlabelled lines.
	Number string
	// Primary and Secondary are the verse bodies with italics already
	// prepared. Secondary is empty when one translation is rendered.
	Primary     string
	Secondary   string
	Highlighted bool
	// Alignment is nil unless two translations are compared.
	Alignment *align.Result
}

// Passage is a chapter ready for rendering.
type Passage struct {
	Reference domain.PassageReference
	// Abbrev is the book abbreviation used by Accordance output.
	Abbrev     string
	Primary    string
	Secondary  string
	Verses     []Verse
	Copyrights []string
}

// Emitter renders a passage.
type Emitter interface {
	Emit(p *Passage) string
}

// New returns the emitter for params.Format.
func New(params Params) (Emitter, error) {
	switch params.Format {
	case FormatText:
		return textEmitter{}, nil
	case FormatAccordance:
		return accordanceEmitter{}, nil
	case FormatHTML:
		return htmlEmitter{opts: params.HTML(), debug: params.Debug}, nil
	case FormatApparatus:
		return apparatusEmitter{opts: params.Apparatus()}, nil
	case FormatSpreadsheet:
		return spreadsheetEmitter{opts: params.Spreadsheet()}, nil
	}
	return nil, fmt.Errorf("format %q: %w", params.Format, domain.ErrValidation)
}

// omitted expands the omission marker for phrase.
func omitted(marker, phrase string) string {
	return strings.ReplaceAll(marker, MacroOmittedPhrase, phrase)
}

// addition returns the secondary reading of an addition together with the
// primary word next to it.
func addition(seg align.Segment) string {
	if seg.Neighbour == "" {
		return seg.Secondary
	}
	if seg.NeighbourFollows {
		return seg.Secondary + " " + seg.Neighbour
	}
	return seg.Neighbour + " " + seg.Secondary
}
