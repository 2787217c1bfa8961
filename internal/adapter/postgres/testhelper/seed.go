package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// uniqueCode returns a translation code that does not collide with other
// parallel tests sharing the container.
func uniqueCode(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedTranslation inserts a catalog entry with a unique code.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, language string) domain.Translation {
	t.Helper()

	tr := domain.Translation{
		Code:      uniqueCode("TR"),
		Name:      "Test Translation",
		Language:  language,
		Year:      "2001",
		Copyright: "Public Domain",
		Provider:  "test",
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO translations (code, name, language, dialect, year, copyright, provider)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tr.Code, tr.Name, tr.Language, tr.Dialect, tr.Year, tr.Copyright, tr.Provider,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}
	return tr
}

// SeedChapters inserts books in the given order and one chapter per entry of
// texts, keyed "Book" -> chapter texts starting at chapter 1.
func SeedChapters(t *testing.T, pool *pgxpool.Pool, translation string, order []string, texts map[string][]string) {
	t.Helper()
	ctx := context.Background()

	for pos, book := range order {
		if _, err := pool.Exec(ctx,
			`INSERT INTO books (translation_code, name, position) VALUES ($1, $2, $3)`,
			translation, book, pos,
		); err != nil {
			t.Fatalf("testhelper: SeedChapters book %s: %v", book, err)
		}
		for i, text := range texts[book] {
			if _, err := pool.Exec(ctx,
				`INSERT INTO chapters (translation_code, book, chapter, text, supports_italics, copyright)
				 VALUES ($1, $2, $3, $4, true, '')`,
				translation, book, i+1, text,
			); err != nil {
				t.Fatalf("testhelper: SeedChapters %s %d: %v", book, i+1, err)
			}
		}
	}
}
