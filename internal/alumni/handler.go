package alumni

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"alumni/views/components"
	"alumni/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the showcase pages, fragments and JSON API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ShowcasePage)
	r.Get("/fragments/showcase", h.ShowcaseFragment)
	r.Get("/fragments/alumni", h.AlumniFragment)
	r.Get("/api/alumni", h.ListAlumni)
	r.Get("/api/categories", h.ListCategories)
}

// --- REST API Handlers ---

// ListAlumni handles GET /api/alumni
func (h *Handler) ListAlumni(w http.ResponseWriter, r *http.Request) {
	q := PageQuery{
		Category: r.URL.Query().Get("category"),
		Offset:   h.parseInt(r.URL.Query().Get("offset"), 0),
		Limit:    h.parseInt(r.URL.Query().Get("limit"), 0),
	}

	page, err := h.svc.Page(r.Context(), q)
	if errors.Is(err, ErrDatasetUnavailable) {
		h.jsonError(w, "alumni data unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.log.Error("failed to list alumni", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if page.Records == nil {
		page.Records = []Record{}
	}

	h.jsonResponse(w, page, http.StatusOK)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CategoryCounts(r.Context())
	if errors.Is(err, ErrDatasetUnavailable) {
		h.jsonError(w, "alumni data unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, counts, http.StatusOK)
}

// --- HTMX Web Handlers ---

// ShowcasePage handles GET /
func (h *Handler) ShowcasePage(w http.ResponseWriter, r *http.Request) {
	view := h.svc.Showcase(r.Context(), r.URL.Query().Get("category"))
	h.render(w, r, pages.ShowcasePage(view, BackToTopThreshold, time.Now().Year()))
}

// ShowcaseFragment handles GET /fragments/showcase (HTMX partial). It is the
// response to a filter click and resets pagination.
func (h *Handler) ShowcaseFragment(w http.ResponseWriter, r *http.Request) {
	view := h.svc.Showcase(r.Context(), r.URL.Query().Get("category"))
	h.render(w, r, components.Showcase(view))
}

// AlumniFragment handles GET /fragments/alumni (HTMX partial). offset is the
// number of cards already on the page.
func (h *Handler) AlumniFragment(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	offset := h.parseInt(r.URL.Query().Get("offset"), 0)

	page, err := h.svc.More(r.Context(), category, offset)
	if errors.Is(err, ErrDatasetUnavailable) {
		h.render(w, r, components.Message(components.LoadErrorMessage))
		return
	}
	if err != nil {
		h.log.Error("failed to load alumni page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, components.CardBatch(page))
}

// --- Helper methods ---

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) parseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
