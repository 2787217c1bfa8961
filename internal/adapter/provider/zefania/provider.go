package zefania

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// Provider serves every Zefania file in a directory. Files are parsed once
// by Open; the provider is read-only afterwards and safe for concurrent use.
type Provider struct {
	bibles map[string]*Bible
	log    *slog.Logger
}

// Open parses all *.xml files in dir. The translation code of each file is
// its base name without the extension.
func Open(ctx context.Context, log *slog.Logger, dir string) (*Provider, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("zefania.Open: %w", err)
	}

	p := &Provider{
		bibles: make(map[string]*Bible, len(paths)),
		log:    log.With("adapter", "zefania"),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			code := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			b, err := ParseFile(path, code)
			if err != nil {
				return err
			}
			mu.Lock()
			p.bibles[code] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("zefania.Open: %w", err)
	}

	p.log.InfoContext(ctx, "translations loaded", slog.String("dir", dir), slog.Int("count", len(p.bibles)))
	return p, nil
}

// FromBibles serves already parsed files, keyed by their translation codes.
func FromBibles(log *slog.Logger, bibles ...*Bible) *Provider {
	p := &Provider{
		bibles: make(map[string]*Bible, len(bibles)),
		log:    log.With("adapter", "zefania"),
	}
	for _, b := range bibles {
		p.bibles[b.Translation.Code] = b
	}
	return p
}

// ParseFile parses a single Zefania file.
func ParseFile(path, code string) (*Bible, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Parse(f, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return b, nil
}

// GetChapter returns one chapter.
func (p *Provider) GetChapter(_ context.Context, translation, book string, chapter int) (*domain.Chapter, error) {
	b, ok := p.bibles[translation]
	if !ok {
		return nil, fmt.Errorf("translation %s: %w", translation, domain.ErrNotFound)
	}
	return b.GetChapter(translation, book, chapter)
}

// GetBooks lists the books of a translation.
func (p *Provider) GetBooks(_ context.Context, translation string, includeChapters bool) ([]domain.Book, error) {
	b, ok := p.bibles[translation]
	if !ok {
		return nil, fmt.Errorf("translation %s: %w", translation, domain.ErrNotFound)
	}
	return b.Books(includeChapters), nil
}

// GetTranslations returns the catalog ordered by code.
func (p *Provider) GetTranslations(_ context.Context) ([]domain.Translation, error) {
	out := make([]domain.Translation, 0, len(p.bibles))
	for _, b := range p.bibles {
		out = append(out, b.Translation)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Ping reports whether at least one translation is loaded.
func (p *Provider) Ping(_ context.Context) error {
	if len(p.bibles) == 0 {
		return fmt.Errorf("zefania: no translations loaded: %w", domain.ErrNotFound)
	}
	return nil
}
