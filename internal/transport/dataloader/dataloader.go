// Package dataloader batches the chapter lookups made while serving one
// request. An interlinear render asks for two chapters at once; the loader
// folds them into a single repository query.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/interlinear/internal/adapter/postgres/bible"
	"github.com/heartmarshall/interlinear/internal/domain"
)

const (
	maxBatch = 16
	wait     = 2 * time.Millisecond
)

type chapterRepo interface {
	GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error)
	GetChapters(ctx context.Context, keys []bible.ChapterKey) ([]domain.Chapter, error)
	GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	Chapters *dataloader.Loader[bible.ChapterKey, *domain.Chapter]
}

// NewLoaders creates loaders backed by repo. Must be called per-request
// (loaders cache results within a single request).
func NewLoaders(repo chapterRepo) *Loaders {
	return &Loaders{
		Chapters: newLoader(newChaptersBatchFn(repo)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[bible.ChapterKey, V]) *dataloader.Loader[bible.ChapterKey, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[bible.ChapterKey, V](wait),
		dataloader.WithBatchCapacity[bible.ChapterKey, V](maxBatch),
	)
}

func newChaptersBatchFn(repo chapterRepo) dataloader.BatchFunc[bible.ChapterKey, *domain.Chapter] {
	return func(ctx context.Context, keys []bible.ChapterKey) []*dataloader.Result[*domain.Chapter] {
		chapters, err := repo.GetChapters(ctx, keys)
		if err != nil {
			return errorResults[*domain.Chapter](len(keys), err)
		}

		found := make(map[bible.ChapterKey]*domain.Chapter, len(chapters))
		for i := range chapters {
			ch := &chapters[i]
			found[bible.ChapterKey{Translation: ch.Translation, Book: ch.Book, Chapter: ch.Chapter}] = ch
		}

		results := make([]*dataloader.Result[*domain.Chapter], len(keys))
		for i, key := range keys {
			if ch, ok := found[key]; ok {
				results[i] = &dataloader.Result[*domain.Chapter]{Data: ch}
			} else {
				results[i] = &dataloader.Result[*domain.Chapter]{
					Error: fmt.Errorf("chapter %s: %w", key, domain.ErrNotFound),
				}
			}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the request
// did not pass through Middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
