// Package site serves the informational pages written in markdown.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"alumni/views/pages"
)

//go:embed about.md
var defaultAbout []byte

type Handler struct {
	log   *slog.Logger
	about string
}

// NewHandler renders the about page once. aboutPath names a markdown file
// that replaces the built-in text; empty keeps the default.
func NewHandler(log *slog.Logger, aboutPath string) (*Handler, error) {
	src := defaultAbout
	if aboutPath != "" {
		b, err := os.ReadFile(aboutPath)
		if err != nil {
			return nil, fmt.Errorf("read about page: %w", err)
		}
		src = b
	}

	html, err := RenderMarkdown(src)
	if err != nil {
		return nil, fmt.Errorf("render about page: %w", err)
	}
	return &Handler{log: log, about: html}, nil
}

// RenderMarkdown converts markdown to HTML. Raw HTML in the source is
// omitted.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/about", h.AboutPage)
}

// AboutPage handles GET /about
func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.AboutPage(h.about, time.Now().Year()).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", "path", r.URL.Path, "error", err)
	}
}
