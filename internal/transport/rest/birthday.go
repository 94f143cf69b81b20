package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	"github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/middleware"
)

// birthdayService defines the minimal interface needed by BirthdayHandler.
type birthdayService interface {
	Submit(ctx context.Context, input birthday.SubmitInput) (*domain.Birthday, error)
	List(ctx context.Context) ([]domain.Birthday, error)
	Approve(ctx context.Context, input birthday.ReviewInput) (*domain.Birthday, error)
	Decline(ctx context.Context, input birthday.ReviewInput) (*domain.Birthday, error)
}

// BirthdayHandler serves birthday REST endpoints.
type BirthdayHandler struct {
	svc birthdayService
	log *slog.Logger
}

// NewBirthdayHandler creates a BirthdayHandler.
func NewBirthdayHandler(svc birthdayService, logger *slog.Logger) *BirthdayHandler {
	return &BirthdayHandler{svc: svc, log: logger.With("handler", "birthday")}
}

type submitRequest struct {
	Name         string `json:"name"`
	Birthday     string `json:"birthday"`
	Relationship string `json:"relationship"`
}

type birthdayResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Birthday        string     `json:"birthday"`
	Relationship    string     `json:"relationship"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	DeclinedAt      *time.Time `json:"declinedAt,omitempty"`
	CalendarEventID *string    `json:"calendarEventId,omitempty"`
}

func toBirthdayResponse(b *domain.Birthday) birthdayResponse {
	return birthdayResponse{
		ID:              b.ID.String(),
		Name:            b.Name,
		Birthday:        b.Birthday,
		Relationship:    b.Relationship,
		Status:          b.Status.String(),
		SubmittedAt:     b.SubmittedAt,
		ApprovedAt:      b.ApprovedAt,
		DeclinedAt:      b.DeclinedAt,
		CalendarEventID: b.CalendarEventID,
	}
}

// Submit handles POST /submit with a JSON body.
func (h *BirthdayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Submit(r.Context(), birthday.SubmitInput{
		Name:         req.Name,
		Birthday:     req.Birthday,
		Relationship: req.Relationship,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBirthdayResponse(result))
}

// List handles GET /birthdays.
func (h *BirthdayHandler) List(w http.ResponseWriter, r *http.Request) {
	birthdays, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]birthdayResponse, 0, len(birthdays))
	for i := range birthdays {
		resp = append(resp, toBirthdayResponse(&birthdays[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Approve handles POST /approve/{id}.
func (h *BirthdayHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Approve)
}

// Decline handles POST /decline/{id}.
func (h *BirthdayHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Decline)
}

// review is the shared transition path behind Approve and Decline.
func (h *BirthdayHandler) review(w http.ResponseWriter, r *http.Request, transition func(context.Context, birthday.ReviewInput) (*domain.Birthday, error)) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := transition(r.Context(), birthday.ReviewInput{ID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBirthdayResponse(result))
}
