package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/interlinear/internal/adapter/postgres"
	"github.com/heartmarshall/interlinear/internal/adapter/postgres/bible"
	"github.com/heartmarshall/interlinear/internal/adapter/provider/zefania"
	"github.com/heartmarshall/interlinear/internal/config"
	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/transport/dataloader"
)

// ChapterSource provides chapter text and book listings.
type ChapterSource interface {
	GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error)
	GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error)
}

// Catalog lists translations.
type Catalog interface {
	GetTranslations(ctx context.Context) ([]domain.Translation, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Source is the content backend selected by configuration.
type Source struct {
	Name     string
	Chapters ChapterSource
	Catalog  Catalog
	Pinger   pinger
	// Repo and TxManager are set only for the PostgreSQL backend.
	Repo      *bible.Repo
	TxManager *postgres.TxManager
	// Middleware prepares per-request state (chapter batching). It is the
	// identity for backends that need none.
	Middleware func(http.Handler) http.Handler

	close func()
}

// Close releases the backend's resources.
func (s *Source) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenSource connects the content backend named by cfg.Source.
func OpenSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Source, error) {
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		return OpenPostgres(ctx, cfg.Database)
	case config.SourceZefania:
		p, err := zefania.Open(ctx, logger, cfg.Source.Dir)
		if err != nil {
			return nil, err
		}
		return &Source{
			Name:       config.SourceZefania,
			Chapters:   p,
			Catalog:    p,
			Pinger:     p,
			Middleware: func(next http.Handler) http.Handler { return next },
		}, nil
	default:
		return nil, fmt.Errorf("app: unknown source %q", cfg.Source.Kind)
	}
}

// OpenPostgres connects the PostgreSQL content store regardless of the
// configured source; the import and migrate commands always write there.
func OpenPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Source, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	src := PostgresSource(pool)
	src.close = pool.Close
	return src, nil
}

// PostgresSource wraps an existing pool. The caller keeps ownership of it.
func PostgresSource(pool *pgxpool.Pool) *Source {
	repo := bible.New(pool)
	return &Source{
		Name:       "database",
		Chapters:   dataloader.NewProvider(repo),
		Catalog:    repo,
		Pinger:     pool,
		Repo:       repo,
		TxManager:  postgres.NewTxManager(pool),
		Middleware: dataloader.Middleware(repo),
	}
}
