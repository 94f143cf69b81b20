package birthday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/google"
	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// Approve publishes a pending submission to the calendar and marks it
// approved. The calendar event is created first; if that fails the
// record stays pending so the admin can retry.
func (s *Service) Approve(ctx context.Context, input ReviewInput) (*domain.Birthday, error) {
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

	eventID, err := s.calendar.InsertEvent(ctx, s.buildEvent(b))
	if err != nil {
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	approved, err := s.birthdays.MarkApproved(ctx, b.ID, s.now().UTC(), eventID)
	if err != nil {
		return nil, fmt.Errorf("mark approved: %w", err)
	}

	s.log.InfoContext(ctx, "birthday approved",
		slog.String("birthday_id", approved.ID.String()),
		slog.String("name", approved.Name),
		slog.String("calendar_event_id", eventID),
	)

	return approved, nil
}

// buildEvent shapes the all-day yearly event for a submission. The age
// is the simple difference of years, matching what the description
// promises for the current calendar year.
func (s *Service) buildEvent(b *domain.Birthday) google.Event {
	age := 0
	if born, err := time.Parse(time.DateOnly, b.Birthday); err == nil {
		age = s.now().Year() - born.Year()
	}

	description := fmt.Sprintf("Turning %d this year 🎉", age)
	if b.Relationship != "" {
		description = fmt.Sprintf("Relationship: %s\n%s", b.Relationship, description)
	}

	return google.Event{
		Summary:     fmt.Sprintf("🎂 %s's Birthday", b.Name),
		Description: description,
		Start:       google.EventDate{Date: b.Birthday},
		End:         google.EventDate{Date: b.Birthday},
		Recurrence:  []string{"RRULE:FREQ=YEARLY"},
	}
}
