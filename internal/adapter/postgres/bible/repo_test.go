package bible_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/interlinear/internal/adapter/postgres"
	"github.com/heartmarshall/interlinear/internal/adapter/postgres/bible"
	"github.com/heartmarshall/interlinear/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/interlinear/internal/domain"
)

func newMockRepo(t *testing.T) (*bible.Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return bible.New(mock), mock
}

// ---------------------------------------------------------------------------
// Unit tests (pgxmock)
// ---------------------------------------------------------------------------

func TestRepo_GetTranslations(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT code, name, language, dialect, year, copyright, provider FROM translations ORDER BY code`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "language", "dialect", "year", "copyright", "provider"}).
			AddRow("KJV", "King James Version", "en", "", "1611", "Public Domain", "zefania").
			AddRow("WEB", "World English Bible", "en", "us", "2000", "Public Domain", "zefania"))

	got, err := repo.GetTranslations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "KJV", got[0].Code)
	assert.Equal(t, "us", got[1].Dialect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetTranslations_QueryError(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM translations`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetTranslations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRepo_GetBooks_UnknownTranslation(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("NOPE").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.GetBooks(context.Background(), "NOPE", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetBooks_WithoutChapters(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("KJV").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT name FROM books WHERE translation_code = \$1 ORDER BY position`).WithArgs("KJV").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("Genesis").AddRow("Exodus"))

	got, err := repo.GetBooks(context.Background(), "KJV", false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Exodus", got[1].Name)
	assert.Empty(t, got[0].Chapters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetChapter_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`LAG\(c.book\) OVER w`).
		WillReturnRows(pgxmock.NewRows([]string{
			"translation_code", "book", "chapter", "text", "supports_italics", "copyright",
			"prev_book", "prev_chapter", "next_book", "next_chapter",
		}))

	_, err := repo.GetChapter(context.Background(), "KJV", "Genesis", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetChapters_Empty(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	got, err := repo.GetChapters(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_SaveTranslation(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO translations`).
		WithArgs("KJV", "King James Version", "en", "", "1611", "Public Domain", "zefania").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveTranslation(context.Background(), domain.Translation{
		Code: "KJV", Name: "King James Version", Language: "en",
		Year: "1611", Copyright: "Public Domain", Provider: "zefania",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_DeleteContent_UsesTransaction(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM books WHERE translation_code = \$1`).WithArgs("KJV").
		WillReturnResult(pgxmock.NewResult("DELETE", 66))
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return repo.DeleteContent(ctx, "KJV")
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Integration tests (PostgreSQL container)
// ---------------------------------------------------------------------------

func TestRepo_Integration_Chapters(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := bible.New(pool)
	ctx := context.Background()

	tr := testhelper.SeedTranslation(t, pool, "en")
	testhelper.SeedChapters(t, pool, tr.Code, []string{"Genesis", "Exodus"}, map[string][]string{
		"Genesis": {"1 In the beginning God created the heaven and the earth.", "1 Thus the heavens and the earth were finished."},
		"Exodus":  {"1 Now these are the names of the children of Israel."},
	})

	t.Run("first chapter has no previous", func(t *testing.T) {
		ch, err := repo.GetChapter(ctx, tr.Code, "Genesis", 1)
		require.NoError(t, err)
		assert.Equal(t, tr.Code, ch.Translation)
		assert.False(t, ch.Previous.IsValid())
		assert.Equal(t, domain.ChapterReference{Book: "Genesis", Chapter: 2}, ch.Next)
		assert.True(t, ch.SupportsItalics)
	})

	t.Run("neighbours cross books", func(t *testing.T) {
		ch, err := repo.GetChapter(ctx, tr.Code, "Genesis", 2)
		require.NoError(t, err)
		assert.Equal(t, domain.ChapterReference{Book: "Genesis", Chapter: 1}, ch.Previous)
		assert.Equal(t, domain.ChapterReference{Book: "Exodus", Chapter: 1}, ch.Next)
	})

	t.Run("batch skips missing", func(t *testing.T) {
		got, err := repo.GetChapters(ctx, []bible.ChapterKey{
			{Translation: tr.Code, Book: "Exodus", Chapter: 1},
			{Translation: tr.Code, Book: "Exodus", Chapter: 7},
			{Translation: tr.Code, Book: "Genesis", Chapter: 1},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("books with chapters", func(t *testing.T) {
		books, err := repo.GetBooks(ctx, tr.Code, true)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Genesis", books[0].Name)
		assert.Len(t, books[0].Chapters, 2)
		assert.Equal(t, domain.ChapterReference{Book: "Exodus", Chapter: 1}, books[1].Chapters[0])
	})
}

func TestRepo_Integration_SaveBooksReplacesContent(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := bible.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()

	tr := domain.Translation{Code: "IMP-" + uuid.New().String()[:8], Name: "Imported", Language: "en"}
	books := []domain.Book{{Name: "Jude"}}
	chapters := []domain.Chapter{{
		ChapterReference: domain.ChapterReference{Book: "Jude", Chapter: 1},
		Text:             "1 Jude, the servant of Jesus Christ.",
	}}

	for range 2 {
		err := tm.RunInTx(ctx, func(ctx context.Context) error {
			if err := repo.SaveTranslation(ctx, tr); err != nil {
				return err
			}
			if err := repo.DeleteContent(ctx, tr.Code); err != nil {
				return err
			}
			return repo.SaveBooks(ctx, tr.Code, books, chapters)
		})
		require.NoError(t, err)
	}

	ch, err := repo.GetChapter(ctx, tr.Code, "Jude", 1)
	require.NoError(t, err)
	assert.Equal(t, chapters[0].Text, ch.Text)
	assert.False(t, ch.Next.IsValid())
}
