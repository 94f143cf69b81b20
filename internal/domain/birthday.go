package domain

import (
	"time"

	"github.com/google/uuid"
)

// BirthdayStatus is the review state of a submission.
type BirthdayStatus string

const (
	StatusPending  BirthdayStatus = "pending"
	StatusApproved BirthdayStatus = "approved"
	StatusDeclined BirthdayStatus = "declined"
)

func (s BirthdayStatus) String() string { return string(s) }

// Valid reports whether s is one of the known statuses.
func (s BirthdayStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Birthday is a submitted birthday record. Birthday holds the date as a
// YYYY-MM-DD string, matching the wire format and the all-day calendar
// event boundary.
type Birthday struct {
	ID           uuid.UUID
	Name         string
	Birthday     string
	Relationship string
	Status       BirthdayStatus
	SubmittedAt  time.Time

	ApprovedAt *time.Time
	DeclinedAt *time.Time

	// CalendarEventID is set once the approval side effect succeeds.
	CalendarEventID *string
}

// IsPending reports whether the record is still awaiting review.
func (b *Birthday) IsPending() bool {
	return b.Status == StatusPending
}
