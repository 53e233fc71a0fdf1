package alumni

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	assert.IsType(t, &HTTPSource{}, NewSource("https://example.com/alumni.csv"))
	assert.IsType(t, &HTTPSource{}, NewSource("http://localhost/alumni.csv"))
	assert.IsType(t, &FileSource{}, NewSource("data/alumni.csv"))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alumni.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	data, err := (&FileSource{Path: path}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCSV, string(data))

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}).Fetch(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&FileSource{Path: path}).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alumni.csv" {
			http.Error(w, "gone", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	data, err := NewSource(srv.URL + "/alumni.csv").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCSV, string(data))

	_, err = NewSource(srv.URL + "/broken").Fetch(context.Background())
	assert.ErrorContains(t, err, "status 500")
}
