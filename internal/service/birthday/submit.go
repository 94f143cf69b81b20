package birthday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// Submit records a new birthday in pending state. Anyone may submit;
// the record only reaches the calendar after an admin approves it.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Birthday, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.birthdays.Create(ctx, &domain.Birthday{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Birthday:     strings.TrimSpace(input.Birthday),
		Relationship: strings.TrimSpace(input.Relationship),
		Status:       domain.StatusPending,
		SubmittedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create birthday: %w", err)
	}

	s.log.InfoContext(ctx, "birthday submitted",
		slog.String("birthday_id", b.ID.String()),
		slog.String("name", b.Name),
	)

	return b, nil
}
