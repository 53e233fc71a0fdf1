package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminConfig = HandlerConfig{AdminUser: "admin", AdminPassword: "s3cret"}

func newTestHandler(cfg HandlerConfig) (*Service, http.Handler) {
	svc := NewService(NewMemoryStore())
	svc.now = func() time.Time { return fixedNow }
	r := chi.NewRouter()
	NewHandler(svc, slog.New(slog.DiscardHandler), cfg).RegisterRoutes(r)
	return svc, r
}

func adminGet(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.SetBasicAuth(adminConfig.AdminUser, adminConfig.AdminPassword)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func formValues(in Input) url.Values {
	return url.Values{
		"name":        {in.Name},
		"email":       {in.Email},
		"department":  {in.Department},
		"passingYear": {in.PassingYear},
		"address":     {in.Address},
		"designation": {in.Designation},
		"company":     {in.Company},
	}
}

func postForm(h http.Handler, v url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestFormPage(t *testing.T) {
	_, h := newTestHandler(HandlerConfig{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/register", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="alumniRegistrationForm"`)
	assert.Contains(t, body, `<option value="Computer Science">`)
	assert.Contains(t, body, `<option value="Other">`)
	assert.Contains(t, body, `id="form-result"`)
}

func TestSubmit(t *testing.T) {
	svc, h := newTestHandler(HandlerConfig{})

	rec := postForm(h, formValues(validInput()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank you! Your registration has been submitted successfully.")
	assert.Contains(t, rec.Body.String(), `class="notification success"`)

	regs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Jane Doe", regs[0].Name)
	assert.Equal(t, fixedNow, regs[0].CreatedAt)
	assert.NotEmpty(t, regs[0].ID)
}

func TestSubmitValidationErrors(t *testing.T) {
	svc, h := newTestHandler(HandlerConfig{})

	in := validInput()
	in.Email = "not-an-email"
	in.Company = ""
	rec := postForm(h, formValues(in))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="notification error"`)
	assert.Contains(t, body, "<li>Please fill in the company field.</li>")
	assert.Contains(t, body, "<li>Please enter a valid email address.</li>")

	regs, _ := svc.List(context.Background())
	assert.Empty(t, regs)
}

func TestSubmitMultipartPhoto(t *testing.T) {
	post := func(h http.Handler, photo []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		for k, v := range formValues(validInput()) {
			require.NoError(t, mw.WriteField(k, v[0]))
		}
		fw, err := mw.CreateFormFile("photo", "me.png")
		require.NoError(t, err)
		_, err = fw.Write(photo)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/register", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	svc, h := newTestHandler(HandlerConfig{})
	rec := post(h, bytes.Repeat([]byte{1}, 512))
	require.Equal(t, http.StatusOK, rec.Code)
	regs, _ := svc.List(context.Background())
	require.Len(t, regs, 1)
	assert.Equal(t, PhotoUploaded, regs[0].PhotoStatus)

	rec = post(h, bytes.Repeat([]byte{1}, MaxPhotoSize+1))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile photo size must be less than 1MB.")
}

func TestSubmitRateLimited(t *testing.T) {
	_, h := newTestHandler(HandlerConfig{RatePerMinute: 1})

	assert.Equal(t, http.StatusOK, postForm(h, formValues(validInput())).Code)
	rec := postForm(h, formValues(validInput()))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many submissions")
}

func TestSubmitBodyTooLarge(t *testing.T) {
	svc, h := newTestHandler(HandlerConfig{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range formValues(validInput()) {
		require.NoError(t, mw.WriteField(k, v[0]))
	}
	fw, err := mw.CreateFormFile("photo", "huge.png")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{1}, maxBodySize+1))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile photo size must be less than 1MB.")
	assert.NotContains(t, rec.Body.String(), "Invalid form submission.")

	regs, _ := svc.List(context.Background())
	assert.Empty(t, regs)
}

func TestExport(t *testing.T) {
	_, h := newTestHandler(adminConfig)

	rec := adminGet(h, "/register/export.csv")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No registration data available to download.")

	require.Equal(t, http.StatusOK, postForm(h, formValues(validInput())).Code)

	rec = adminGet(h, "/register/export.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="MVN_Alumni_Registration_2025-03-14.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Student_Name,Email,"))
	assert.True(t, strings.HasPrefix(lines[1], "Jane Doe,jane@example.com,Law,2020,"))
}

func TestAdminRoutesRequireCredentials(t *testing.T) {
	svc, h := newTestHandler(adminConfig)
	reg, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	for _, target := range []string{"/register/export.csv", "/api/registrations/" + reg.ID} {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Basic realm="registrations"`, rec.Header().Get("WWW-Authenticate"))
			assert.NotContains(t, rec.Body.String(), "jane@example.com")

			req := httptest.NewRequest(http.MethodGet, target, nil)
			req.SetBasicAuth("admin", "wrong")
			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminRoutesDisabledWithoutPassword(t *testing.T) {
	svc, h := newTestHandler(HandlerConfig{AdminUser: "admin"})
	reg, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	for _, target := range []string{"/register/export.csv", "/api/registrations/" + reg.ID} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.SetBasicAuth("admin", "")
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "jane@example.com")
	}
}

func TestGetRegistration(t *testing.T) {
	svc, h := newTestHandler(adminConfig)

	rec := adminGet(h, "/api/registrations/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	reg, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	rec = adminGet(h, "/api/registrations/"+reg.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var got Registration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, reg.ID, got.ID)
	assert.Equal(t, "Law", got.Department)
}
