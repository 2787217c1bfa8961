package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// Import reads translation code from src and replaces its content in the
// store. The store is written in a single transaction, so a failed import
// leaves the previous content in place.
func (s *Service) Import(ctx context.Context, src Source, code string) (*Result, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	translations, err := src.GetTranslations(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest.Import: translations: %w", err)
	}
	var tr *domain.Translation
	for i := range translations {
		if translations[i].Code == code {
			tr = &translations[i]
			break
		}
	}
	if tr == nil {
		return nil, fmt.Errorf("ingest.Import: translation %s: %w", code, domain.ErrNotFound)
	}

	books, err := src.GetBooks(ctx, code, true)
	if err != nil {
		return nil, fmt.Errorf("ingest.Import: books: %w", err)
	}

	var chapters []domain.Chapter
	for _, b := range books {
		for _, ref := range b.Chapters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			ch, err := src.GetChapter(ctx, code, ref.Book, ref.Chapter)
			if err != nil {
				return nil, fmt.Errorf("ingest.Import: chapter %s: %w", ref, err)
			}
			chapters = append(chapters, *ch)
		}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.SaveTranslation(ctx, *tr); err != nil {
			return fmt.Errorf("save translation: %w", err)
		}
		if err := s.store.DeleteContent(ctx, code); err != nil {
			return fmt.Errorf("delete content: %w", err)
		}
		if err := s.store.SaveBooks(ctx, code, books, chapters); err != nil {
			return fmt.Errorf("save books: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ingest.Import: %w", err)
	}

	s.log.InfoContext(ctx, "translation imported",
		slog.String("code", code),
		slog.Int("books", len(books)),
		slog.Int("chapters", len(chapters)),
	)

	return &Result{Translation: *tr, Books: len(books), Chapters: len(chapters)}, nil
}
