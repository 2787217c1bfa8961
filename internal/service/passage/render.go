package passage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/interlinear/internal/align"
	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/format"
	"github.com/heartmarshall/interlinear/internal/reference"
	"github.com/heartmarshall/interlinear/internal/verse"
)

// lowOverlap is the number of common words below which a verse pair counts
// as poorly aligned.
const lowOverlap = 3

// Render renders params.Passage in params.Format. An unknown translation or
// chapter yields an empty passage, possibly with a navigation suggestion.
func (s *Service) Render(ctx context.Context, params format.Params) (*domain.RenderedPassage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	emitter, err := format.New(params)
	if err != nil {
		return nil, err
	}

	f, err := s.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if f.primary == nil || (params.Interlinear() && f.secondary == nil) {
		s.log.InfoContext(ctx, "chapter not found",
			slog.String("passage", params.Passage.Display),
			slog.String("primary", params.PrimaryTranslation),
			slog.String("secondary", params.SecondaryTranslation),
		)
		return s.empty(ctx, params)
	}

	p, stats := assemble(params, f)
	if len(p.Verses) == 0 {
		return s.empty(ctx, params)
	}

	names := displayNames(f.translations)
	content := emitter.Emit(p)
	if params.Format == format.FormatHTML {
		content = substituteTitles(content, names, params.PrimaryTranslation, params.SecondaryTranslation)
	}

	result := &domain.RenderedPassage{
		Content:  content,
		Previous: domain.ChapterPassage(f.primary.Previous),
		Next:     domain.ChapterPassage(f.primary.Next),
	}
	if params.Interlinear() {
		result.Suggestions = suggest(stats, params, sameLanguage(f.translations, params.PrimaryTranslation, params.SecondaryTranslation))
	}
	// An apparatus of identical chapters emits nothing at all.
	if strings.TrimSpace(content) == "" {
		nav, err := s.empty(ctx, params)
		if err != nil {
			return nil, err
		}
		result.Content = ""
		result.Suggestions.NavigateTo = nav.Suggestions.NavigateTo
	}

	s.log.DebugContext(ctx, "passage rendered",
		slog.String("passage", params.Passage.Display),
		slog.String("format", params.Format.String()),
		slog.Int("verses", len(p.Verses)),
		slog.Int("low_overlap", stats.lowOverlap),
	)
	return result, nil
}

type fetched struct {
	primary      *domain.Chapter
	secondary    *domain.Chapter
	translations []domain.Translation
}

// fetch loads both chapters and the catalog concurrently. Not-found chapters
// are left nil.
func (s *Service) fetch(ctx context.Context, params format.Params) (fetched, error) {
	var f fetched
	g, gctx := errgroup.WithContext(ctx)

	book, chapter := params.Passage.Book, params.Passage.Chapter

	g.Go(func() error {
		ch, err := s.getChapter(gctx, params.PrimaryTranslation, book, chapter)
		f.primary = ch
		return err
	})
	if params.Interlinear() {
		g.Go(func() error {
			ch, err := s.getChapter(gctx, params.SecondaryTranslation, book, chapter)
			f.secondary = ch
			return err
		})
	}
	g.Go(func() error {
		ts, err := s.catalog.GetTranslations(gctx)
		if err != nil {
			return fmt.Errorf("passage.Render: get translations: %w", err)
		}
		f.translations = ts
		return nil
	})

	if err := g.Wait(); err != nil {
		return fetched{}, err
	}
	return f, nil
}

func (s *Service) getChapter(ctx context.Context, translation, book string, chapter int) (*domain.Chapter, error) {
	ch, err := s.chapters.GetChapter(ctx, translation, book, chapter)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("passage.Render: get chapter %s %s %d: %w", translation, book, chapter, err)
	}
	return ch, nil
}

// empty returns a passage without content that points at the first chapter
// of the primary translation.
func (s *Service) empty(ctx context.Context, params format.Params) (*domain.RenderedPassage, error) {
	result := &domain.RenderedPassage{}

	books, err := s.chapters.GetBooks(ctx, params.PrimaryTranslation, true)
	if errors.Is(err, domain.ErrNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("passage.Render: get books: %w", err)
	}
	if target, ok := firstChapter(books); ok && target != params.Passage.ChapterReference {
		nav := domain.ChapterPassage(target)
		result.Suggestions.NavigateTo = &nav
	}
	return result, nil
}

func firstChapter(books []domain.Book) (domain.ChapterReference, bool) {
	if len(books) == 0 || books[0].Name == "" {
		return domain.ChapterReference{}, false
	}
	if len(books[0].Chapters) > 0 {
		return books[0].Chapters[0], true
	}
	return domain.ChapterReference{Book: books[0].Name, Chapter: 1}, true
}

type alignStats struct {
	compared   int
	lowOverlap int
}

// assemble splits, merges and aligns the fetched chapters into a passage.
func assemble(params format.Params, f fetched) (*format.Passage, alignStats) {
	p := &format.Passage{
		Reference: params.Passage,
		Primary:   params.PrimaryTranslation,
	}
	if book, ok := reference.LookupBook(params.Passage.Book); ok {
		p.Abbrev = book.Abbrev
	}

	var stats alignStats
	highlighted := params.Passage.HighlightedVerses

	if !params.Interlinear() {
		opts := params.AlignOptions(f.primary.SupportsItalics)
		for _, l := range verse.Split(f.primary.Text) {
			p.Verses = append(p.Verses, format.Verse{
				Number:      l.Number,
				Primary:     align.Italics(l.Text, opts),
				Highlighted: verse.IsHighlighted(l.Number, highlighted),
			})
		}
		p.Copyrights = copyrights(f.translations, f.primary)
		return p, stats
	}

	p.Secondary = params.SecondaryTranslation
	opts := params.AlignOptions(f.primary.SupportsItalics && f.secondary.SupportsItalics)
	aligner := align.New(opts)

	for _, pair := range merge(verse.Split(f.primary.Text), verse.Split(f.secondary.Text)) {
		r := aligner.BestLines(pair.primary, pair.secondary)
		if !r.SingleSided {
			stats.compared++
			if r.WordsInCommon < lowOverlap {
				stats.lowOverlap++
			}
		}
		p.Verses = append(p.Verses, format.Verse{
			Number:      pair.number(),
			Primary:     align.Italics(pair.primary.Text, opts),
			Secondary:   align.Italics(pair.secondary.Text, opts),
			Highlighted: verse.IsHighlighted(pair.number(), highlighted),
			Alignment:   &r,
		})
	}
	p.Copyrights = copyrights(f.translations, f.primary, f.secondary)
	return p, stats
}

// copyrights returns the notices of the rendered chapters. A chapter
// copyright overrides the translation's.
func copyrights(translations []domain.Translation, chapters ...*domain.Chapter) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ch := range chapters {
		notice := ch.Copyright
		if notice == "" {
			if t, ok := findTranslation(translations, ch.Translation); ok {
				notice = t.Copyright
			}
		}
		if notice == "" || seen[notice] {
			continue
		}
		seen[notice] = true
		out = append(out, notice)
	}
	return out
}
