package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/interlinear/internal/format"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for source %q", SourcePostgres)
		}
	case SourceZefania:
		if strings.TrimSpace(c.Source.Dir) == "" {
			return fmt.Errorf("source.dir is required for source %q", SourceZefania)
		}
	default:
		return fmt.Errorf("source.kind must be %q or %q (got %q)", SourcePostgres, SourceZefania, c.Source.Kind)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.Render.validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (r *RenderConfig) validate() error {
	if !format.Format(r.DefaultFormat).IsValid() {
		return fmt.Errorf("default_format %q is not a known format", r.DefaultFormat)
	}
	if strings.TrimSpace(r.DefaultPrimary) == "" {
		return fmt.Errorf("default_primary is required")
	}
	return nil
}

// Stylesheet builds the HTML stylesheet from the configured fonts and colours.
func (r RenderConfig) Stylesheet() format.Stylesheet {
	return format.Stylesheet{
		FontFamily:      r.FontFamily,
		FontSize:        r.FontSize,
		PrimaryColour:   r.PrimaryColour,
		SecondaryColour: r.SecondaryColour,
		HighlightColour: r.HighlightColour,
		VerseColour:     r.VerseColour,
	}
}

// Options returns format-specific options carrying the configured markers,
// or nil for formats without options. fullDocument and neighbourForAddition
// come from the request; callers fall back to r.NeighbourForAddition.
func (r RenderConfig) Options(f format.Format, fullDocument, neighbourForAddition bool) format.Options {
	switch f {
	case format.FormatHTML:
		return format.HTMLOptions{FullDocument: fullDocument, Stylesheet: r.Stylesheet()}
	case format.FormatApparatus:
		return format.ApparatusOptions{
			OccurrenceMarker:           r.OccurrenceMarker,
			OmissionMarker:             r.OmissionMarker,
			RenderNeighbourForAddition: neighbourForAddition,
		}
	case format.FormatSpreadsheet:
		return format.SpreadsheetOptions{OmissionMarker: r.CellOmission}
	default:
		return nil
	}
}
