package web

import (
	"errors"
	"net/http"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	"github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
)

type submitPageData struct {
	Name         string
	Birthday     string
	Relationship string
	Error        string
}

// Form handles GET / and renders the submission form.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "submit", submitPageData{})
}

// Submit handles POST /submit with a form-encoded body. Validation
// failures re-render the form with the entered values kept.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "could not read the form")
		return
	}

	input := birthday.SubmitInput{
		Name:         r.PostFormValue("name"),
		Birthday:     r.PostFormValue("birthday"),
		Relationship: r.PostFormValue("relationship"),
	}

	result, err := h.birthdays.Submit(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.render(w, r, http.StatusBadRequest, "submit", submitPageData{
				Name:         input.Name,
				Birthday:     input.Birthday,
				Relationship: input.Relationship,
				Error:        err.Error(),
			})
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, "could not save the submission, please try again")
		return
	}

	h.render(w, r, http.StatusCreated, "submitted", struct{ Name string }{Name: result.Name})
}
