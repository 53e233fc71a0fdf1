package alumni

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(src Source) http.Handler {
	svc := newTestService(src, ServiceConfig{PageSize: 10})
	r := chi.NewRouter()
	NewHandler(svc, slog.New(slog.DiscardHandler)).RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestShowcasePage(t *testing.T) {
	r := newTestRouter(&fakeSource{data: testCSV})

	rec := get(t, r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="showcase"`)
	assert.Contains(t, body, `id="back-to-top-btn"`)
	assert.Contains(t, body, `data-threshold="300"`)
	assert.Contains(t, body, "Good *times*")
	assert.NotContains(t, body, `id="show-more"`)
}

func TestShowcaseFragment(t *testing.T) {
	r := newTestRouter(&fakeSource{data: testCSV})

	rec := get(t, r, "/fragments/showcase?category=SOA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No alumni found for this selection.")
	assert.NotContains(t, rec.Body.String(), "<html")

	rec = get(t, r, "/fragments/showcase?category=LAW")
	assert.Contains(t, rec.Body.String(), `class="filter-btn active" data-department="LAW"`)
	assert.Contains(t, rec.Body.String(), "Law (2021)")
	assert.NotContains(t, rec.Body.String(), "Computer Science")
}

func TestAlumniFragment(t *testing.T) {
	r := newTestRouter(&fakeSource{data: manyRecordsCSV(25)})

	first := get(t, r, "/fragments/showcase")
	assert.Contains(t, first.Body.String(), "offset=10")

	second := get(t, r, "/fragments/alumni?category=All&offset=10")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "alumnus-14")
	assert.Contains(t, second.Body.String(), "offset=20")

	last := get(t, r, "/fragments/alumni?category=All&offset=20")
	assert.Contains(t, last.Body.String(), "alumnus-00")
	assert.NotContains(t, last.Body.String(), `id="show-more"`)
}

func TestPaginationParamsAtExtremes(t *testing.T) {
	r := newTestRouter(&fakeSource{data: manyRecordsCSV(25)})
	maxInt := strconv.Itoa(math.MaxInt)

	t.Run("api", func(t *testing.T) {
		tests := []struct {
			query    string
			want     int
			first    string
			showMore bool
		}{
			{"offset=1&limit=" + maxInt, 24, "alumnus-23", false},
			{"limit=" + maxInt, 25, "alumnus-24", false},
			{"limit=-1", 10, "alumnus-24", true},
			{"limit=99999999999999999999", 10, "alumnus-24", true},
			{"offset=-5&limit=2", 2, "alumnus-24", true},
			{"offset=" + maxInt + "&limit=" + maxInt, 0, "", false},
			{"offset=25", 0, "", false},
		}
		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				rec := get(t, r, "/api/alumni?"+tt.query)
				require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

				var page Page
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
				assert.Len(t, page.Records, tt.want)
				assert.Equal(t, tt.showMore, page.ShowMore)
				if tt.first != "" {
					assert.Equal(t, tt.first, page.Records[0].Name)
				}
			})
		}
	})

	t.Run("fragments", func(t *testing.T) {
		tests := []struct {
			query    string
			contains string
			showMore bool
		}{
			{"offset=1&limit=" + maxInt, "alumnus-23", true},
			{"offset=-5", "alumnus-24", true},
			{"offset=20&limit=-1", "alumnus-04", false},
			{"offset=" + maxInt, "", false},
		}
		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				rec := get(t, r, "/fragments/alumni?"+tt.query)
				require.Equal(t, http.StatusOK, rec.Code)
				body := rec.Body.String()
				if tt.contains != "" {
					assert.Contains(t, body, tt.contains)
				} else {
					assert.NotContains(t, body, "alumnus-")
				}
				assert.Equal(t, tt.showMore, strings.Contains(body, `id="show-more"`))
			})
		}
	})
}

func TestFragmentsLoadError(t *testing.T) {
	r := newTestRouter(&fakeSource{err: errors.New("down")})

	rec := get(t, r, "/fragments/showcase")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error loading alumni data.")

	rec = get(t, r, "/fragments/alumni?offset=10")
	assert.Contains(t, rec.Body.String(), "Error loading alumni data.")
}

func TestListAlumniAPI(t *testing.T) {
	r := newTestRouter(&fakeSource{data: testCSV})

	rec := get(t, r, "/api/alumni?category=LAW&limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, "B", page.Records[0].Name)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.ShowMore)

	rec = get(t, r, "/api/alumni?category=SOA")
	assert.JSONEq(t, `{"category":"SOA","records":[],"offset":0,"rendered":0,"total":0,"showMore":false,"empty":true}`, rec.Body.String())
}

func TestAPIUnavailable(t *testing.T) {
	r := newTestRouter(&fakeSource{err: errors.New("down")})

	for _, target := range []string{"/api/alumni", "/api/categories"} {
		rec := get(t, r, target)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.JSONEq(t, `{"error":"alumni data unavailable"}`, rec.Body.String())
	}
}

func TestListCategoriesAPI(t *testing.T) {
	r := newTestRouter(&fakeSource{data: testCSV})

	rec := get(t, r, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts []CategoryCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	require.Len(t, counts, len(Categories()))
	assert.Equal(t, "SOET", counts[0].Code)
	assert.Equal(t, 1, counts[0].Count)
}
