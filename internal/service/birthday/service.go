package birthday

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/google"
	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

type birthdayRepo interface {
	Create(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Birthday, error)
	List(ctx context.Context) ([]domain.Birthday, error)
	MarkApproved(ctx context.Context, id uuid.UUID, approvedAt time.Time, calendarEventID string) (*domain.Birthday, error)
	MarkDeclined(ctx context.Context, id uuid.UUID, declinedAt time.Time) (*domain.Birthday, error)
}

type calendarClient interface {
	InsertEvent(ctx context.Context, event google.Event) (string, error)
}

// Service provides the birthday submission and review workflow.
type Service struct {
	birthdays birthdayRepo
	calendar  calendarClient
	log       *slog.Logger

	// now is swappable so age calculation can be pinned in tests.
	now func() time.Time
}

// NewService creates a new Birthday service.
func NewService(
	log *slog.Logger,
	birthdays birthdayRepo,
	calendar calendarClient,
) *Service {
	return &Service{
		birthdays: birthdays,
		calendar:  calendar,
		log:       log.With("service", "birthday"),
		now:       time.Now,
	}
}
