package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/interlinear/internal/adapter/provider/zefania"
	"github.com/heartmarshall/interlinear/internal/app"
	"github.com/heartmarshall/interlinear/internal/config"
	"github.com/heartmarshall/interlinear/internal/service/ingest"
)

// ImportCmd loads one Zefania file into PostgreSQL, replacing any content
// previously stored under the same translation code.
type ImportCmd struct {
	XML  string `arg:"" help:"Zefania XML file" type:"existingfile"`
	Code string `help:"Translation code (default: file name without extension)"`
}

func (c *ImportCmd) Run(ctx context.Context) error {
	cfg, err := config.LoadFrom(CLI.Config)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	code := c.Code
	if code == "" {
		code = strings.TrimSuffix(filepath.Base(c.XML), filepath.Ext(c.XML))
	}

	bible, err := zefania.ParseFile(c.XML, code)
	if err != nil {
		return err
	}

	db, err := app.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := ingest.NewService(logger, db.Repo, db.TxManager).
		Import(ctx, zefania.FromBibles(logger, bible), code)
	if err != nil {
		return err
	}

	logger.Info("import finished",
		slog.String("translation", res.Translation.Code),
		slog.Int("books", res.Books),
		slog.Int("chapters", res.Chapters),
	)
	fmt.Printf("%s: %d books, %d chapters\n", res.Translation.Code, res.Books, res.Chapters)
	return nil
}
