// Package birthday implements the birthday submission repository using PostgreSQL.
package birthday

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/postgres"
	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

const table = "birthdays"

var columns = []string{
	"id",
	"name",
	"birthday",
	"relationship",
	"status",
	"submitted_at",
	"approved_at",
	"declined_at",
	"calendar_event_id",
}

// builder is the shared squirrel builder with PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// record is the database row shape; mapped to domain.Birthday at the edges.
type record struct {
	ID              uuid.UUID  `db:"id"`
	Name            string     `db:"name"`
	Birthday        time.Time  `db:"birthday"`
	Relationship    string     `db:"relationship"`
	Status          string     `db:"status"`
	SubmittedAt     time.Time  `db:"submitted_at"`
	ApprovedAt      *time.Time `db:"approved_at"`
	DeclinedAt      *time.Time `db:"declined_at"`
	CalendarEventID *string    `db:"calendar_event_id"`
}

func (r record) toDomain() domain.Birthday {
	return domain.Birthday{
		ID:              r.ID,
		Name:            r.Name,
		Birthday:        r.Birthday.Format(time.DateOnly),
		Relationship:    r.Relationship,
		Status:          domain.BirthdayStatus(r.Status),
		SubmittedAt:     r.SubmittedAt,
		ApprovedAt:      r.ApprovedAt,
		DeclinedAt:      r.DeclinedAt,
		CalendarEventID: r.CalendarEventID,
	}
}

// Repo provides birthday submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new birthday repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new submission and returns the persisted record.
func (r *Repo) Create(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error) {
	query := builder.Insert(table).
		Columns("id", "name", "birthday", "relationship", "status", "submitted_at").
		Values(b.ID, b.Name, b.Birthday, b.Relationship, b.Status.String(), b.SubmittedAt).
		Suffix("RETURNING " + columnList())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row record
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "birthday", b.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a submission by primary key.
// Returns domain.ErrNotFound if no record with that id exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Birthday, error) {
	query := builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row record
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "birthday", id)
	}

	result := row.toDomain()
	return &result, nil
}

// List returns all submissions ordered by submitted_at descending.
// Returns an empty slice when the table is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Birthday, error) {
	query := builder.Select(columns...).From(table).OrderBy("submitted_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []record
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}

	result := make([]domain.Birthday, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}

	return result, nil
}

// MarkApproved transitions a record to approved, recording the approval
// timestamp and the created calendar event id in a single update.
// Returns domain.ErrNotFound if no record with that id exists.
func (r *Repo) MarkApproved(ctx context.Context, id uuid.UUID, approvedAt time.Time, calendarEventID string) (*domain.Birthday, error) {
	query := builder.Update(table).
		Set("status", domain.StatusApproved.String()).
		Set("approved_at", approvedAt).
		Set("calendar_event_id", calendarEventID).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row record
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "birthday", id)
	}

	result := row.toDomain()
	return &result, nil
}

// MarkDeclined transitions a record to declined, recording the decline timestamp.
// Returns domain.ErrNotFound if no record with that id exists.
func (r *Repo) MarkDeclined(ctx context.Context, id uuid.UUID, declinedAt time.Time) (*domain.Birthday, error) {
	query := builder.Update(table).
		Set("status", domain.StatusDeclined.String()).
		Set("declined_at", declinedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row record
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "birthday", id)
	}

	result := row.toDomain()
	return &result, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}
