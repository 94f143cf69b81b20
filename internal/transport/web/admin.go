package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	"github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/middleware"
	"github.com/hamzasarfraz/birthday-backend/pkg/ctxutil"
)

type adminPageData struct {
	AdminEmail string
	Birthdays  []domain.Birthday
}

// AdminPreview handles GET /admin-preview. Anonymous visitors are sent
// to the login flow.
func (h *Handler) AdminPreview(w http.ResponseWriter, r *http.Request) {
	email, ok := ctxutil.AdminEmailFromCtx(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	birthdays, err := h.birthdays.List(r.Context())
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "could not load submissions")
		return
	}

	h.render(w, r, http.StatusOK, "admin", adminPageData{
		AdminEmail: email,
		Birthdays:  birthdays,
	})
}

type reviewedPageData struct {
	Action          string
	Name            string
	CalendarEventID string
}

// Approve handles GET /approve/{id} from the admin preview.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "approved", h.birthdays.Approve)
}

// Decline handles GET /decline/{id} from the admin preview.
func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "declined", h.birthdays.Decline)
}

// review is the shared transition path behind the approve and decline
// links. The HTML and JSON surfaces drive the same service calls.
func (h *Handler) review(w http.ResponseWriter, r *http.Request, action string, transition func(context.Context, birthday.ReviewInput) (*domain.Birthday, error)) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "that link is malformed")
		return
	}

	result, err := transition(r.Context(), birthday.ReviewInput{ID: id})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.renderError(w, r, http.StatusNotFound, "no such submission")
		case errors.Is(err, domain.ErrConflict):
			h.renderError(w, r, http.StatusConflict, "this submission was already decided")
		default:
			h.renderError(w, r, http.StatusInternalServerError, "could not update the submission, please try again")
		}
		return
	}

	data := reviewedPageData{Action: action, Name: result.Name}
	if result.CalendarEventID != nil {
		data.CalendarEventID = *result.CalendarEventID
	}
	h.render(w, r, http.StatusOK, "reviewed", data)
}

// AccessDenied handles GET /access-denied.
func (h *Handler) AccessDenied(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "denied", nil)
}
