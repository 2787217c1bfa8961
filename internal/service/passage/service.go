package passage

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/interlinear/internal/domain"
)

type chapterProvider interface {
	GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error)
	GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error)
}

type translationCatalog interface {
	GetTranslations(ctx context.Context) ([]domain.Translation, error)
}

// Service renders passages from one or two translations.
type Service struct {
	chapters chapterProvider
	catalog  translationCatalog
	log      *slog.Logger
}

// NewService creates a new passage service.
func NewService(
	log *slog.Logger,
	chapters chapterProvider,
	catalog translationCatalog,
) *Service {
	return &Service{
		chapters: chapters,
		catalog:  catalog,
		log:      log.With("service", "passage"),
	}
}
