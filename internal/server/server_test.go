package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "images", "boy.png"), []byte("png"), 0o644))

	static := fstest.MapFS{"app.js": {Data: []byte("console.log(1)")}}
	s := New(Config{Port: 0, AssetsDir: assets}, slog.New(slog.DiscardHandler), static, nil, pingRoutes{})
	return s.Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/health", http.StatusOK, "ok"},
		{"/ping", http.StatusOK, "pong"},
		{"/static/app.js", http.StatusOK, "console.log(1)"},
		{"/assets/images/boy.png", http.StatusOK, "png"},
		{"/assets/images/missing.png", http.StatusNotFound, ""},
		{"/nope", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
