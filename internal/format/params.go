package format

import (
	"github.com/heartmarshall/interlinear/internal/align"
	"github.com/heartmarshall/interlinear/internal/domain"
)

// Format selects the output emitter.
type Format string

const (
	FormatText        Format = "text"
	FormatAccordance  Format = "accordance"
	FormatHTML        Format = "html"
	FormatApparatus   Format = "apparatus"
	FormatSpreadsheet Format = "spreadsheet"
)

func (f Format) String() string { return string(f) }

func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatAccordance, FormatHTML, FormatApparatus, FormatSpreadsheet:
		return true
	}
	return false
}

// Interlinear reports whether the format compares two translations. Text and
// Accordance output only ever show the primary translation.
func (f Format) Interlinear() bool {
	switch f {
	case FormatHTML, FormatApparatus, FormatSpreadsheet:
		return true
	}
	return false
}

// Options is the per-format payload of Params. It is implemented by
// HTMLOptions, ApparatusOptions and SpreadsheetOptions only.
type Options interface {
	format() Format
}

// HTMLOptions configures HTML output.
type HTMLOptions struct {
	// FullDocument wraps the fragment in a complete document with an
	// embedded stylesheet.
	FullDocument bool
	Stylesheet   Stylesheet
}

func (HTMLOptions) format() Format { return FormatHTML }

// ApparatusOptions configures apparatus output. OmissionMarker may contain
// %OMITTED_PHRASE% and OccurrenceMarker may contain %OCCURRENCE%.
type ApparatusOptions struct {
	OccurrenceMarker           string
	OmissionMarker             string
	RenderNeighbourForAddition bool
}

func (ApparatusOptions) format() Format { return FormatApparatus }

// SpreadsheetOptions configures spreadsheet output. OmissionMarker may
// contain %OMITTED_PHRASE%.
type SpreadsheetOptions struct {
	OmissionMarker string
}

func (SpreadsheetOptions) format() Format { return FormatSpreadsheet }

// Marker macros.
const (
	MacroOmittedPhrase = "%OMITTED_PHRASE%"
	MacroOccurrence    = "%OCCURRENCE%"
)

// DefaultHTMLOptions returns the HTML options used when none are given.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{Stylesheet: DefaultStylesheet()}
}

// DefaultApparatusOptions returns the apparatus options used when none are given.
func DefaultApparatusOptions() ApparatusOptions {
	return ApparatusOptions{
		OccurrenceMarker: "<sup>" + MacroOccurrence + "</sup>",
		OmissionMarker:   "om.",
	}
}

// DefaultSpreadsheetOptions returns the spreadsheet options used when none are given.
func DefaultSpreadsheetOptions() SpreadsheetOptions {
	return SpreadsheetOptions{OmissionMarker: "-"}
}

// Params are the rendering parameters of one request.
type Params struct {
	Format               Format
	PrimaryTranslation   string
	SecondaryTranslation string
	Passage              domain.PassageReference

	IgnoreCase        bool
	IgnoreDiacritics  bool
	IgnorePunctuation bool
	RenderItalics     bool
	// Debug adds alignment statistics to HTML output as comments.
	Debug bool

	Options Options
}

// Validate checks the parameters.
func (p Params) Validate() error {
	var errs []domain.FieldError
	if !p.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "unknown format"})
	}
	if p.PrimaryTranslation == "" {
		errs = append(errs, domain.FieldError{Field: "primary", Message: "required"})
	}
	if !p.Passage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "passage", Message: "invalid"})
	}
	if p.Options != nil && p.Options.format() != p.Format {
		errs = append(errs, domain.FieldError{Field: "options", Message: "do not match format"})
	}
	return domain.NewValidationErrors(errs)
}

// Interlinear reports whether two translations are compared.
func (p Params) Interlinear() bool {
	return p.Format.Interlinear() && p.SecondaryTranslation != ""
}

// AlignOptions returns the aligner options for these parameters.
func (p Params) AlignOptions(supportsItalics bool) align.Options {
	return align.Options{
		IgnoreCase:        p.IgnoreCase,
		IgnoreDiacritics:  p.IgnoreDiacritics,
		IgnorePunctuation: p.IgnorePunctuation,
		RenderItalics:     p.RenderItalics,
		SupportsItalics:   supportsItalics,
	}
}

// HTML returns the HTML options, or the defaults.
func (p Params) HTML() HTMLOptions {
	if o, ok := p.Options.(HTMLOptions); ok {
		return o
	}
	return DefaultHTMLOptions()
}

// Apparatus returns the apparatus options, or the defaults.
func (p Params) Apparatus() ApparatusOptions {
	if o, ok := p.Options.(ApparatusOptions); ok {
		return o
	}
	return DefaultApparatusOptions()
}

// Spreadsheet returns the spreadsheet options, or the defaults.
func (p Params) Spreadsheet() SpreadsheetOptions {
	if o, ok := p.Options.(SpreadsheetOptions); ok {
		return o
	}
	return DefaultSpreadsheetOptions()
}
