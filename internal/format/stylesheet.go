package format

import (
	"strings"
	"text/template"
)

// Stylesheet holds the font and colour settings of full HTML documents.
type Stylesheet struct {
	FontFamily      string
	FontSize        string
	PrimaryColour   string
	SecondaryColour string
	HighlightColour string
	VerseColour     string
}

// DefaultStylesheet returns the stylesheet settings used when none are given.
func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		FontFamily:      "Georgia, serif",
		FontSize:        "1rem",
		PrimaryColour:   "#1a1a1a",
		SecondaryColour: "#8b0000",
		HighlightColour: "#fff3b0",
		VerseColour:     "#666666",
	}
}

func (s Stylesheet) withDefaults() Stylesheet {
	d := DefaultStylesheet()
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.FontSize == "" {
		s.FontSize = d.FontSize
	}
	if s.PrimaryColour == "" {
		s.PrimaryColour = d.PrimaryColour
	}
	if s.SecondaryColour == "" {
		s.SecondaryColour = d.SecondaryColour
	}
	if s.HighlightColour == "" {
		s.HighlightColour = d.HighlightColour
	}
	if s.VerseColour == "" {
		s.VerseColour = d.VerseColour
	}
	return s
}

var cssTemplate = template.Must(template.New("css").Funcs(template.FuncMap{"css": cssValue}).Parse(
	`body { font-family: {{css .FontFamily}}; font-size: {{css .FontSize}}; color: {{css .PrimaryColour}}; }
.verse sup { color: {{css .VerseColour}}; }
mark { background-color: {{css .HighlightColour}}; }
.sup-sub { display: inline-flex; flex-direction: column; vertical-align: middle; line-height: 1.1; }
.sup-sub .sup { color: {{css .PrimaryColour}}; }
.sup-sub .sub { color: {{css .SecondaryColour}}; font-size: 0.85em; }
.copyright { font-size: 0.8em; color: {{css .VerseColour}}; }
`))

// cssValue drops characters that could end a declaration or the style
// element.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// CSS renders the stylesheet.
func (s Stylesheet) CSS() string {
	var b strings.Builder
	if err := cssTemplate.Execute(&b, s.withDefaults()); err != nil {
		return ""
	}
	return b.String()
}
