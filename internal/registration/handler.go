package registration

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"alumni/internal/alumni"
	"alumni/views/components"
	"alumni/views/models"
	"alumni/views/pages"
)

const (
	maxBodySize    = 4 << 20
	successMessage = "Thank you! Your registration has been submitted successfully."
	exportRealm    = "registrations"
	emptyExport    = "No registration data available to download."
)

// HandlerConfig tunes the registration routes.
type HandlerConfig struct {
	// RatePerMinute caps accepted submissions per minute; values < 1
	// disable the cap.
	RatePerMinute int
	// AdminUser and AdminPassword guard the CSV export and the
	// registration lookup. Both routes are not mounted without a password.
	AdminUser     string
	AdminPassword string
}

type Handler struct {
	svc     *Service
	log     *slog.Logger
	limiter *rate.Limiter
	cfg     HandlerConfig
}

func NewHandler(svc *Service, log *slog.Logger, cfg HandlerConfig) *Handler {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}
	return &Handler{svc: svc, log: log, limiter: limiter, cfg: cfg}
}

// RegisterRoutes mounts the registration form and submission routes, plus
// the admin routes when an admin password is configured.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/register", h.FormPage)
	r.Post("/register", h.Submit)

	if h.cfg.AdminPassword == "" {
		h.log.Info("registration export disabled, no admin password configured")
		return
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(exportRealm, map[string]string{h.cfg.AdminUser: h.cfg.AdminPassword}))
		r.Get("/register/export.csv", h.Export)
		r.Get("/api/registrations/{id}", h.GetRegistration)
	})
}

// FormPage handles GET /register
func (h *Handler) FormPage(w http.ResponseWriter, r *http.Request) {
	form := models.RegistrationForm{Departments: departments()}
	h.render(w, r, http.StatusOK, pages.RegisterPage(form, time.Now().Year()))
}

// Submit handles POST /register (HTMX partial)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		h.notify(w, r, http.StatusTooManyRequests, models.Notification{
			Kind:    "error",
			Message: "Too many submissions, please try again in a minute.",
		})
		return
	}

	in, err := h.parseInput(w, r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.notify(w, r, http.StatusUnprocessableEntity, models.Notification{
			Kind:    "error",
			Message: "Please correct the following:",
			Details: []string{photoTooLarge},
		})
		return
	}
	if err != nil {
		h.notify(w, r, http.StatusBadRequest, models.Notification{Kind: "error", Message: "Invalid form submission."})
		return
	}

	reg, err := h.svc.Submit(r.Context(), in)
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, len(verrs))
		for i, e := range verrs {
			details[i] = e.Message
		}
		h.notify(w, r, http.StatusUnprocessableEntity, models.Notification{
			Kind:    "error",
			Message: "Please correct the following:",
			Details: details,
		})
		return
	}
	if err != nil {
		h.log.Error("failed to submit registration", "error", err)
		h.notify(w, r, http.StatusInternalServerError, models.Notification{Kind: "error", Message: "Registration failed, please try again."})
		return
	}

	h.log.Info("registration accepted", "id", reg.ID, "department", reg.Department)
	h.notify(w, r, http.StatusOK, models.Notification{Kind: "success", Message: successMessage})
}

// Export handles GET /register/export.csv
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list registrations", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(regs) == 0 {
		http.Error(w, emptyExport, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(h.svc.Today())+`"`)
	if err := WriteCSV(w, regs); err != nil {
		h.log.Error("failed to write export", "error", err)
	}
}

// GetRegistration handles GET /api/registrations/{id}
func (h *Handler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reg, err := h.svc.GetByID(r.Context(), id)
	if errors.Is(err, ErrRegistrationNotFound) {
		h.jsonResponse(w, map[string]string{"error": "registration not found"}, http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get registration", "error", err)
		h.jsonResponse(w, map[string]string{"error": "internal error"}, http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, reg, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) parseInput(w http.ResponseWriter, r *http.Request) (Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxBodySize); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return Input{}, err
		}
		if err := r.ParseForm(); err != nil {
			return Input{}, err
		}
	}

	in := Input{
		Name:             r.FormValue("name"),
		Email:            r.FormValue("email"),
		Department:       r.FormValue("department"),
		CustomDepartment: r.FormValue("customDepartment"),
		PassingYear:      r.FormValue("passingYear"),
		Address:          r.FormValue("address"),
		Designation:      r.FormValue("designation"),
		Company:          r.FormValue("company"),
		Package:          r.FormValue("package"),
		Feedback:         r.FormValue("feedback"),
	}
	if file, header, err := r.FormFile("photo"); err == nil {
		file.Close()
		in.PhotoSize = header.Size
	}
	return in, nil
}

func (h *Handler) notify(w http.ResponseWriter, r *http.Request, status int, n models.Notification) {
	h.render(w, r, status, components.Notification(n))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// departments lists every department of the category table in order.
func departments() []string {
	var out []string
	for _, c := range alumni.Categories() {
		out = append(out, c.Subcategories...)
	}
	return out
}
