package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/interlinear/internal/config"
)

// MigrateCmd applies goose migrations (goose requires *sql.DB).
type MigrateCmd struct {
	Dir  string `help:"Migrations directory" default:"migrations" type:"existingdir"`
	Down bool   `help:"Roll back the most recent migration instead"`
}

func (c *MigrateCmd) Run(ctx context.Context) error {
	cfg, err := config.LoadFrom(CLI.Config)
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("migrate: DATABASE_DSN is required")
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("migrate: sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(c.Dir))
	if err != nil {
		return fmt.Errorf("migrate: goose new provider: %w", err)
	}

	if c.Down {
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate: goose down: %w", err)
		}
		if res != nil {
			fmt.Printf("rolled back %s\n", res.Source.Path)
		}
		return nil
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: goose up: %w", err)
	}
	for _, r := range results {
		fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
	}
	return nil
}
