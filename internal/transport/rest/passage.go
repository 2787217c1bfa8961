package rest

import (
	"context"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/heartmarshall/interlinear/internal/config"
	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/format"
	"github.com/heartmarshall/interlinear/internal/reference"
)

// passageRenderer defines the minimal interface needed by PassageHandler.
type passageRenderer interface {
	Render(ctx context.Context, params format.Params) (*domain.RenderedPassage, error)
}

// PassageHandler serves rendered passages.
type PassageHandler struct {
	svc      passageRenderer
	defaults config.RenderConfig
	log      *slog.Logger
}

// NewPassageHandler creates a PassageHandler. defaults fill in the format,
// primary translation and emitter options a request leaves out.
func NewPassageHandler(svc passageRenderer, defaults config.RenderConfig, logger *slog.Logger) *PassageHandler {
	return &PassageHandler{svc: svc, defaults: defaults, log: logger.With("handler", "passage")}
}

type referenceResponse struct {
	Book        string   `json:"book"`
	Chapter     int      `json:"chapter"`
	Display     string   `json:"display"`
	Segment     string   `json:"segment"`
	Highlighted []string `json:"highlighted,omitempty"`
}

type suggestionsResponse struct {
	IgnoreCase        bool               `json:"ignoreCase,omitempty"`
	IgnoreDiacritics  bool               `json:"ignoreDiacritics,omitempty"`
	IgnorePunctuation bool               `json:"ignorePunctuation,omitempty"`
	NavigateTo        *referenceResponse `json:"navigateTo,omitempty"`
}

type passageResponse struct {
	Passage     referenceResponse   `json:"passage"`
	Format      string              `json:"format"`
	MediaType   string              `json:"mediaType"`
	Content     string              `json:"content"`
	Previous    *referenceResponse  `json:"previous,omitempty"`
	Next        *referenceResponse  `json:"next,omitempty"`
	Suggestions suggestionsResponse `json:"suggestions"`
}

// Get handles GET /api/passages/{segment}.
//
// Query parameters: primary, secondary, format, ignore_case,
// ignore_diacritics, ignore_punctuation, italics, full, neighbour, debug, raw.
// With raw=true the rendered content is the response body.
func (h *PassageHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, err := h.params(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rendered, err := h.svc.Render(r.Context(), params)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	etag := contentETag(rendered.Content)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	mediaType := mediaTypeOf(params)
	if boolParam(r, "raw", false) {
		w.Header().Set("Content-Type", mediaType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rendered.Content))
		return
	}

	writeJSON(w, http.StatusOK, passageResponse{
		Passage:     toReference(params.Passage),
		Format:      string(params.Format),
		MediaType:   mediaType,
		Content:     rendered.Content,
		Previous:    optionalReference(rendered.Previous),
		Next:        optionalReference(rendered.Next),
		Suggestions: toSuggestions(rendered.Suggestions),
	})
}

func (h *PassageHandler) params(r *http.Request) (format.Params, error) {
	q := r.URL.Query()

	citation := reference.DecodeFromURL(r.PathValue("segment"))
	passage := reference.Resolve(citation, 1)
	if !passage.IsValid() {
		return format.Params{}, domain.NewValidationError("passage", "unrecognised citation")
	}

	f := format.Format(strings.ToLower(q.Get("format")))
	if f == "" {
		f = format.Format(h.defaults.DefaultFormat)
	}
	primary := strings.TrimSpace(q.Get("primary"))
	if primary == "" {
		primary = h.defaults.DefaultPrimary
	}

	params := format.Params{
		Format:               f,
		PrimaryTranslation:   primary,
		SecondaryTranslation: strings.TrimSpace(q.Get("secondary")),
		Passage:              passage,
		IgnoreCase:           boolParam(r, "ignore_case", false),
		IgnoreDiacritics:     boolParam(r, "ignore_diacritics", false),
		IgnorePunctuation:    boolParam(r, "ignore_punctuation", false),
		RenderItalics:        boolParam(r, "italics", true),
		Debug:                boolParam(r, "debug", false),
	}
	if f.IsValid() {
		params.Options = h.defaults.Options(f,
			boolParam(r, "full", false),
			boolParam(r, "neighbour", h.defaults.NeighbourForAddition),
		)
	}
	return params, nil
}

// boolParam reads a query flag. A present but empty flag ("?debug") is true.
func boolParam(r *http.Request, name string, fallback bool) bool {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return fallback
	}
	if values[0] == "" {
		return true
	}
	v, err := strconv.ParseBool(values[0])
	if err != nil {
		return fallback
	}
	return v
}

func mediaTypeOf(p format.Params) string {
	switch p.Format {
	case format.FormatHTML:
		return "text/html; charset=utf-8"
	case format.FormatSpreadsheet:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// contentETag is a strong validator over the rendered content.
func contentETag(content string) string {
	sum := blake3.Sum256([]byte(content))
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func toReference(p domain.PassageReference) referenceResponse {
	return referenceResponse{
		Book:        p.Book,
		Chapter:     p.Chapter,
		Display:     p.Display,
		Segment:     reference.EncodeForURL(p.Display),
		Highlighted: p.HighlightedVerses,
	}
}

func optionalReference(p domain.PassageReference) *referenceResponse {
	if !p.IsValid() {
		return nil
	}
	ref := toReference(p)
	return &ref
}

func toSuggestions(s domain.Suggestions) suggestionsResponse {
	out := suggestionsResponse{
		IgnoreCase:        s.IgnoreCase,
		IgnoreDiacritics:  s.IgnoreDiacritics,
		IgnorePunctuation: s.IgnorePunctuation,
	}
	if s.NavigateTo != nil {
		out.NavigateTo = optionalReference(*s.NavigateTo)
	}
	return out
}
