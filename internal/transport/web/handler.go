package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	authsvc "github.com/hamzasarfraz/birthday-backend/internal/service/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
)

//go:embed templates/*.html
var templateFS embed.FS

// birthdayService defines the minimal interface needed by the web handler.
type birthdayService interface {
	Submit(ctx context.Context, input birthday.SubmitInput) (*domain.Birthday, error)
	List(ctx context.Context) ([]domain.Birthday, error)
	Approve(ctx context.Context, input birthday.ReviewInput) (*domain.Birthday, error)
	Decline(ctx context.Context, input birthday.ReviewInput) (*domain.Birthday, error)
}

// authService defines the minimal interface for the login flow.
type authService interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*authsvc.LoginResult, error)
}

// Handler serves the HTML pages: the submission form, the admin preview
// and the Google login round trip.
type Handler struct {
	birthdays birthdayService
	auth      authService
	secure    bool
	log       *slog.Logger
	pages     map[string]*template.Template
}

// NewHandler creates a web Handler. secure controls the Secure flag on
// the cookies it sets.
func NewHandler(birthdays birthdayService, auth authService, secure bool, logger *slog.Logger) (*Handler, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"submit", "submitted", "admin", "reviewed", "denied", "error"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Handler{
		birthdays: birthdays,
		auth:      auth,
		secure:    secure,
		log:       logger.With("handler", "web"),
		pages:     pages,
	}, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := h.pages[page]
	if !ok {
		h.log.ErrorContext(r.Context(), "unknown template", slog.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		h.log.ErrorContext(r.Context(), "render template",
			slog.String("page", page),
			slog.String("error", err.Error()))
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, "error", struct{ Message string }{Message: message})
}
