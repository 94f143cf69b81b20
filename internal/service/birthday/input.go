package birthday

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a birthday.
type SubmitInput struct {
	Name         string
	Birthday     string
	Relationship string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	birthday := strings.TrimSpace(i.Birthday)
	if birthday == "" {
		errs = append(errs, domain.FieldError{Field: "birthday", Message: "required"})
	} else if _, err := time.Parse(time.DateOnly, birthday); err != nil {
		errs = append(errs, domain.FieldError{Field: "birthday", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(strings.TrimSpace(i.Relationship)) > 200 {
		errs = append(errs, domain.FieldError{Field: "relationship", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewInput holds the parameters for approving or declining a submission.
type ReviewInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
