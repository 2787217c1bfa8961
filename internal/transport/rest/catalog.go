package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/reference"
)

type translationCatalog interface {
	GetTranslations(ctx context.Context) ([]domain.Translation, error)
}

// CatalogHandler serves citation resolution and the translation list.
type CatalogHandler struct {
	catalog translationCatalog
	log     *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog translationCatalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: logger.With("handler", "catalog")}
}

// Resolve handles GET /api/resolve?q=John+3:16[&chapter=N].
func (h *CatalogHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	chapter := 1
	if raw := r.URL.Query().Get("chapter"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "chapter must be a number")
			return
		}
		chapter = n
	}

	passage := reference.Resolve(q, chapter)
	if !passage.IsValid() {
		writeError(w, http.StatusNotFound, "unrecognised citation")
		return
	}
	writeJSON(w, http.StatusOK, toReference(passage))
}

type translationResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Language  string `json:"language,omitempty"`
	Dialect   string `json:"dialect,omitempty"`
	Year      string `json:"year,omitempty"`
	Copyright string `json:"copyright,omitempty"`
	Provider  string `json:"provider,omitempty"`
}

// Translations handles GET /api/translations.
func (h *CatalogHandler) Translations(w http.ResponseWriter, r *http.Request) {
	translations, err := h.catalog.GetTranslations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]translationResponse, len(translations))
	for i, t := range translations {
		out[i] = translationResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}
