// Package ingest copies translations from a read-only provider into the
// content store.
package ingest

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// Source is any content provider that can enumerate a translation.
type Source interface {
	GetTranslations(ctx context.Context) ([]domain.Translation, error)
	GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error)
	GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error)
}

type contentStore interface {
	SaveTranslation(ctx context.Context, t domain.Translation) error
	DeleteContent(ctx context.Context, translation string) error
	SaveBooks(ctx context.Context, translation string, books []domain.Book, chapters []domain.Chapter) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service imports translations.
type Service struct {
	log   *slog.Logger
	store contentStore
	tx    txManager
}

// NewService creates a new ingest service.
func NewService(log *slog.Logger, store contentStore, tx txManager) *Service {
	return &Service{
		log:   log.With("service", "ingest"),
		store: store,
		tx:    tx,
	}
}

// Result summarises one import.
type Result struct {
	Translation domain.Translation
	Books       int
	Chapters    int
}
