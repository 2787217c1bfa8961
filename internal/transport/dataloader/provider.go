package dataloader

import (
	"context"

	"github.com/heartmarshall/interlinear/internal/adapter/postgres/bible"
	"github.com/heartmarshall/interlinear/internal/domain"
)

// Provider serves chapters through the request's loaders, falling back to
// the repository for calls made outside an HTTP request (CLI, tests).
type Provider struct {
	repo chapterRepo
}

// NewProvider wraps repo.
func NewProvider(repo chapterRepo) *Provider {
	return &Provider{repo: repo}
}

// GetChapter loads one chapter, batched with concurrent loads of the same
// request.
func (p *Provider) GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error) {
	l := FromContext(ctx)
	if l == nil {
		return p.repo.GetChapter(ctx, translation, book, chapter)
	}
	key := bible.ChapterKey{Translation: translation, Book: book, Chapter: chapter}
	return l.Chapters.Load(ctx, key)()
}

// GetBooks is not batched.
func (p *Provider) GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error) {
	return p.repo.GetBooks(ctx, translation, includeChapters)
}
