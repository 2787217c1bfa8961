package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/interlinear/internal/domain"
)

//go:generate moq -out source_mock_test.go -pkg ingest . Source
//go:generate moq -out content_store_mock_test.go -pkg ingest . contentStore
//go:generate moq -out tx_manager_mock_test.go -pkg ingest . txManager

func newSource() *SourceMock {
	books := []domain.Book{
		{Name: "Genesis", Chapters: []domain.ChapterReference{{Book: "Genesis", Chapter: 1}, {Book: "Genesis", Chapter: 2}}},
		{Name: "Jude", Chapters: []domain.ChapterReference{{Book: "Jude", Chapter: 1}}},
	}
	return &SourceMock{
		GetTranslationsFunc: func(_ context.Context) ([]domain.Translation, error) {
			return []domain.Translation{{Code: "KJV", Name: "King James Version"}}, nil
		},
		GetBooksFunc: func(_ context.Context, _ string, _ bool) ([]domain.Book, error) {
			return books, nil
		},
		GetChapterFunc: func(_ context.Context, translation, book string, chapter int) (*domain.Chapter, error) {
			return &domain.Chapter{
				ChapterReference: domain.ChapterReference{Book: book, Chapter: chapter},
				Translation:      translation,
				Text:             "1 text",
			}, nil
		},
	}
}

func newStore() *contentStoreMock {
	return &contentStoreMock{
		SaveTranslationFunc: func(_ context.Context, _ domain.Translation) error { return nil },
		DeleteContentFunc:   func(_ context.Context, _ string) error { return nil },
		SaveBooksFunc: func(_ context.Context, _ string, _ []domain.Book, _ []domain.Chapter) error {
			return nil
		},
	}
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func newTestService(store contentStore, tx txManager) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, tx)
}

func TestImport_HappyPath(t *testing.T) {
	t.Parallel()

	src, store, tx := newSource(), newStore(), passthroughTx()
	svc := newTestService(store, tx)

	res, err := svc.Import(context.Background(), src, "KJV")
	require.NoError(t, err)

	assert.Equal(t, "King James Version", res.Translation.Name)
	assert.Equal(t, 2, res.Books)
	assert.Equal(t, 3, res.Chapters)

	require.Len(t, tx.RunInTxCalls(), 1)
	require.Len(t, store.SaveTranslationCalls(), 1)
	require.Len(t, store.DeleteContentCalls(), 1)
	assert.Equal(t, "KJV", store.DeleteContentCalls()[0].Translation)
	require.Len(t, store.SaveBooksCalls(), 1)
	assert.Len(t, store.SaveBooksCalls()[0].Chapters, 3)
	assert.Equal(t, "Jude", store.SaveBooksCalls()[0].Chapters[2].Book)
	assert.True(t, src.GetBooksCalls()[0].IncludeChapters)
}

func TestImport_Errors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("db down")
	tests := []struct {
		name    string
		code    string
		setup   func(src *SourceMock, store *contentStoreMock)
		wantErr error
		saved   bool
	}{
		{
			name:    "empty code",
			code:    " ",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown translation",
			code:    "ESV",
			wantErr: domain.ErrNotFound,
		},
		{
			name: "chapter missing",
			code: "KJV",
			setup: func(src *SourceMock, _ *contentStoreMock) {
				src.GetChapterFunc = func(_ context.Context, _, _ string, _ int) (*domain.Chapter, error) {
					return nil, domain.ErrNotFound
				}
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "store failure",
			code: "KJV",
			setup: func(_ *SourceMock, store *contentStoreMock) {
				store.SaveBooksFunc = func(_ context.Context, _ string, _ []domain.Book, _ []domain.Chapter) error {
					return dbErr
				}
			},
			wantErr: dbErr,
			saved:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, store := newSource(), newStore()
			if tt.setup != nil {
				tt.setup(src, store)
			}
			svc := newTestService(store, passthroughTx())

			_, err := svc.Import(context.Background(), src, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.saved, len(store.SaveTranslationCalls()) > 0)
		})
	}
}

func TestImport_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := newStore()
	svc := newTestService(store, passthroughTx())

	_, err := svc.Import(ctx, newSource(), "KJV")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.SaveTranslationCalls())
}
