package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// SeedBirthday inserts a pending submission and returns it.
// Name is suffixed to avoid collisions between parallel tests.
func SeedBirthday(t *testing.T, pool *pgxpool.Pool, birthday string) domain.Birthday {
	t.Helper()
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	b := domain.Birthday{
		ID:          uuid.New(),
		Name:        "Test Person " + suffix,
		Birthday:    birthday,
		Status:      domain.StatusPending,
		SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO birthdays (id, name, birthday, relationship, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Name, b.Birthday, b.Relationship, b.Status.String(), b.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBirthday insert: %v", err)
	}

	return b
}
