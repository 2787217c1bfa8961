// Package bible stores translations, their books and chapter text in
// PostgreSQL and serves them as the passage content provider.
package bible

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/interlinear/internal/adapter/postgres"
	"github.com/heartmarshall/interlinear/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ChapterKey identifies one chapter of one translation.
type ChapterKey struct {
	Translation string
	Book        string
	Chapter     int
}

func (k ChapterKey) String() string {
	return fmt.Sprintf("%s/%s/%d", k.Translation, k.Book, k.Chapter)
}

// Repo provides translation content backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new bible repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetTranslations returns the catalog ordered by code.
func (r *Repo) GetTranslations(ctx context.Context) ([]domain.Translation, error) {
	query, args, err := psql.
		Select("code", "name", "language", "dialect", "year", "copyright", "provider").
		From("translations").
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translations query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "translations", "*")
	}
	defer rows.Close()

	var out []domain.Translation
	for rows.Next() {
		var t domain.Translation
		if err := rows.Scan(&t.Code, &t.Name, &t.Language, &t.Dialect, &t.Year, &t.Copyright, &t.Provider); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "translations", "*")
	}
	return out, nil
}

// GetBooks returns the books of a translation in canonical order, with their
// chapters when includeChapters is set. Returns domain.ErrNotFound for an
// unknown translation.
func (r *Repo) GetBooks(ctx context.Context, translation string, includeChapters bool) ([]domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM translations WHERE code = $1)`, translation).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "translation", translation)
	}
	if !exists {
		return nil, fmt.Errorf("translation %s: %w", translation, domain.ErrNotFound)
	}

	query, args, err := psql.
		Select("name").
		From("books").
		Where(sq.Eq{"translation_code": translation}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build books query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "books", translation)
	}
	var books []domain.Book
	index := make(map[string]int)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan book: %w", err)
		}
		index[name] = len(books)
		books = append(books, domain.Book{Name: name})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "books", translation)
	}

	if !includeChapters || len(books) == 0 {
		return books, nil
	}

	query, args, err = psql.
		Select("c.book", "c.chapter").
		From("chapters c").
		Join("books b ON b.translation_code = c.translation_code AND b.name = c.book").
		Where(sq.Eq{"c.translation_code": translation}).
		OrderBy("b.position", "c.chapter").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build chapters query: %w", err)
	}

	rows, err = q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "chapters", translation)
	}
	defer rows.Close()

	for rows.Next() {
		var ref domain.ChapterReference
		if err := rows.Scan(&ref.Book, &ref.Chapter); err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		if i, ok := index[ref.Book]; ok {
			books[i].Chapters = append(books[i].Chapters, ref)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "chapters", translation)
	}
	return books, nil
}

// GetChapter returns one chapter with its neighbours. Returns
// domain.ErrNotFound when the translation has no such chapter.
func (r *Repo) GetChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error) {
	key := ChapterKey{Translation: translation, Book: book, Chapter: chapter}
	chapters, err := r.GetChapters(ctx, []ChapterKey{key})
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("chapter %s: %w", key, domain.ErrNotFound)
	}
	return &chapters[0], nil
}

// GetChapters loads several chapters in one query. Missing chapters are
// left out of the result. Previous and Next follow book position, then
// chapter number, within each translation.
func (r *Repo) GetChapters(ctx context.Context, keys []ChapterKey) ([]domain.Chapter, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	translations := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	match := make(sq.Or, 0, len(keys))
	for _, k := range keys {
		if !seen[k.Translation] {
			seen[k.Translation] = true
			translations = append(translations, k.Translation)
		}
		match = append(match, sq.Eq{"n.translation_code": k.Translation, "n.book": k.Book, "n.chapter": k.Chapter})
	}

	neighbours := sq.
		Select(
			"c.translation_code", "c.book", "c.chapter", "c.text", "c.supports_italics", "c.copyright",
			"LAG(c.book) OVER w AS prev_book", "LAG(c.chapter) OVER w AS prev_chapter",
			"LEAD(c.book) OVER w AS next_book", "LEAD(c.chapter) OVER w AS next_chapter",
		).
		From("chapters c").
		Join("books b ON b.translation_code = c.translation_code AND b.name = c.book").
		Where(sq.Eq{"c.translation_code": translations}).
		Suffix("WINDOW w AS (PARTITION BY c.translation_code ORDER BY b.position, c.chapter)")

	query, args, err := psql.
		Select(
			"n.translation_code", "n.book", "n.chapter", "n.text", "n.supports_italics", "n.copyright",
			"n.prev_book", "n.prev_chapter", "n.next_book", "n.next_chapter",
		).
		FromSelect(neighbours, "n").
		Where(match).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build chapters query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "chapters", keys[0].String())
	}
	defer rows.Close()

	var out []domain.Chapter
	for rows.Next() {
		var (
			ch                 domain.Chapter
			prevBook, nextBook *string
			prevChap, nextChap *int
		)
		if err := rows.Scan(
			&ch.Translation, &ch.Book, &ch.Chapter, &ch.Text, &ch.SupportsItalics, &ch.Copyright,
			&prevBook, &prevChap, &nextBook, &nextChap,
		); err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		ch.Previous = chapterRef(prevBook, prevChap)
		ch.Next = chapterRef(nextBook, nextChap)
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "chapters", keys[0].String())
	}
	return out, nil
}

func chapterRef(book *string, chapter *int) domain.ChapterReference {
	if book == nil || chapter == nil {
		return domain.ChapterReference{}
	}
	return domain.ChapterReference{Book: *book, Chapter: *chapter}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SaveTranslation inserts or updates catalog metadata.
func (r *Repo) SaveTranslation(ctx context.Context, t domain.Translation) error {
	query, args, err := psql.
		Insert("translations").
		Columns("code", "name", "language", "dialect", "year", "copyright", "provider").
		Values(t.Code, t.Name, t.Language, t.Dialect, t.Year, t.Copyright, t.Provider).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name, language = EXCLUDED.language, dialect = EXCLUDED.dialect,
			year = EXCLUDED.year, copyright = EXCLUDED.copyright, provider = EXCLUDED.provider,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build translation upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "translation", t.Code)
	}
	return nil
}

// DeleteContent removes the books and chapters of a translation, keeping
// its catalog entry.
func (r *Repo) DeleteContent(ctx context.Context, translation string) error {
	query, args, err := psql.Delete("books").Where(sq.Eq{"translation_code": translation}).ToSql()
	if err != nil {
		return fmt.Errorf("build books delete: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "books", translation)
	}
	return nil
}

// SaveBooks writes a translation's books and chapters in one batch. Books
// take their position from the slice order.
func (r *Repo) SaveBooks(ctx context.Context, translation string, books []domain.Book, chapters []domain.Chapter) error {
	batch := &pgx.Batch{}
	for i, b := range books {
		batch.Queue(
			`INSERT INTO books (translation_code, name, position) VALUES ($1, $2, $3)
			 ON CONFLICT (translation_code, name) DO UPDATE SET position = EXCLUDED.position`,
			translation, b.Name, i,
		)
	}
	for _, ch := range chapters {
		batch.Queue(
			`INSERT INTO chapters (translation_code, book, chapter, text, supports_italics, copyright)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (translation_code, book, chapter) DO UPDATE SET
			   text = EXCLUDED.text, supports_italics = EXCLUDED.supports_italics, copyright = EXCLUDED.copyright`,
			translation, ch.Book, ch.Chapter, ch.Text, ch.SupportsItalics, ch.Copyright,
		)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return postgres.MapError(err, "books", translation)
		}
	}
	if err := results.Close(); err != nil {
		return postgres.MapError(err, "books", translation)
	}
	return nil
}
