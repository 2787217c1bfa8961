package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/heartmarshall/interlinear/internal/app"
	"github.com/heartmarshall/interlinear/internal/config"
	"github.com/heartmarshall/interlinear/internal/format"
	"github.com/heartmarshall/interlinear/internal/reference"
	"github.com/heartmarshall/interlinear/internal/service/passage"
)

// RenderCmd renders a passage from the configured content source.
type RenderCmd struct {
	Citation          string `arg:"" help:"Passage to render"`
	Primary           string `short:"p" help:"Primary translation code (default from config)"`
	Secondary         string `short:"s" help:"Secondary translation code"`
	Format            string `short:"f" help:"Output format: text, accordance, html, apparatus, spreadsheet (default from config)"`
	IgnoreCase        bool   `help:"Treat words differing only in case as equal"`
	IgnoreDiacritics  bool   `help:"Treat words differing only in diacritics as equal"`
	IgnorePunctuation bool   `help:"Treat words differing only in punctuation as equal"`
	NoItalics         bool   `help:"Drop italic markup"`
	Debug             bool   `help:"Include alignment diagnostics"`
	Full              bool   `help:"Emit a complete HTML document"`
	Neighbour         bool   `help:"Show the neighbouring primary word for additions (apparatus)" xor:"neighbour"`
	NoNeighbour       bool   `help:"Do not show the neighbouring word for additions" xor:"neighbour"`
	XZ                bool   `name:"xz" help:"Compress the output with xz"`
	Out               string `short:"o" help:"Write to a file instead of stdout" type:"path"`
}

func (c *RenderCmd) Run(ctx context.Context) error {
	cfg, err := config.LoadFrom(CLI.Config)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	params, err := c.params(cfg.Render)
	if err != nil {
		return err
	}

	src, err := app.OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	rendered, err := passage.NewService(logger, src.Chapters, src.Catalog).Render(ctx, params)
	if err != nil {
		return err
	}

	if c.Out == "" {
		return writeContent(os.Stdout, rendered.Content, c.XZ)
	}
	return writeFile(c.Out, rendered.Content, c.XZ)
}

// writeFile writes content to path. A failed close is reported, since it
// can mean the file was not fully flushed.
func writeFile(path, content string, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeContent(f, content, compress)
}

func (c *RenderCmd) params(defaults config.RenderConfig) (format.Params, error) {
	p := reference.Resolve(c.Citation, 1)
	if !p.IsValid() {
		return format.Params{}, fmt.Errorf("unrecognised citation %q", c.Citation)
	}

	f := format.Format(strings.ToLower(c.Format))
	if f == "" {
		f = format.Format(defaults.DefaultFormat)
	}
	if !f.IsValid() {
		return format.Params{}, fmt.Errorf("unknown format %q", c.Format)
	}
	primary := c.Primary
	if primary == "" {
		primary = defaults.DefaultPrimary
	}

	return format.Params{
		Format:               f,
		PrimaryTranslation:   primary,
		SecondaryTranslation: c.Secondary,
		Passage:              p,
		IgnoreCase:           c.IgnoreCase,
		IgnoreDiacritics:     c.IgnoreDiacritics,
		IgnorePunctuation:    c.IgnorePunctuation,
		RenderItalics:        !c.NoItalics,
		Debug:                c.Debug,
		Options:              defaults.Options(f, c.Full, c.neighbour(defaults)),
	}, nil
}

// neighbour resolves the addition-neighbour setting: an explicit flag wins
// over the configured default.
func (c *RenderCmd) neighbour(defaults config.RenderConfig) bool {
	switch {
	case c.Neighbour:
		return true
	case c.NoNeighbour:
		return false
	default:
		return defaults.NeighbourForAddition
	}
}

// writeContent writes content to w, xz-compressed when compress is set.
func writeContent(w io.Writer, content string, compress bool) error {
	if !compress {
		_, err := io.WriteString(w, content)
		return err
	}
	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if _, err := io.WriteString(xw, content); err != nil {
		_ = xw.Close()
		return err
	}
	return xw.Close()
}
