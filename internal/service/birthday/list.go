package birthday

import (
	"context"
	"fmt"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// List returns all submissions, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Birthday, error) {
	birthdays, err := s.birthdays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	return birthdays, nil
}
