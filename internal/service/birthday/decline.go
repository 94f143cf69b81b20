package birthday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// Decline rejects a pending submission. No calendar event is created.
func (s *Service) Decline(ctx context.Context, input ReviewInput) (*domain.Birthday, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.birthdays.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get birthday: %w", err)
	}
	if !b.IsPending() {
		return nil, fmt.Errorf("birthday %s is already %s: %w", b.ID, b.Status, domain.ErrConflict)
	}

	declined, err := s.birthdays.MarkDeclined(ctx, b.ID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark declined: %w", err)
	}

	s.log.InfoContext(ctx, "birthday declined",
		slog.String("birthday_id", declined.ID.String()),
		slog.String("name", declined.Name),
	)

	return declined, nil
}
