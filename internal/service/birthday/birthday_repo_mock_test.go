package birthday

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

var _ birthdayRepo = &birthdayRepoMock{}

type birthdayRepoMock struct {
	CreateFunc       func(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Birthday, error)
	ListFunc         func(ctx context.Context) ([]domain.Birthday, error)
	MarkApprovedFunc func(ctx context.Context, id uuid.UUID, approvedAt time.Time, calendarEventID string) (*domain.Birthday, error)
	MarkDeclinedFunc func(ctx context.Context, id uuid.UUID, declinedAt time.Time) (*domain.Birthday, error)

	calls struct {
		Create []struct {
			B *domain.Birthday
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List         []struct{}
		MarkApproved []struct {
			ID              uuid.UUID
			ApprovedAt      time.Time
			CalendarEventID string
		}
		MarkDeclined []struct {
			ID         uuid.UUID
			DeclinedAt time.Time
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockMarkApproved sync.RWMutex
	lockMarkDeclined sync.RWMutex
}

func (mock *birthdayRepoMock) Create(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error) {
	if mock.CreateFunc == nil {
		panic("birthdayRepoMock.CreateFunc: method is nil but birthdayRepo.Create was just called")
	}
	callInfo := struct {
		B *domain.Birthday
	}{B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *birthdayRepoMock) CreateCalls() []struct {
	B *domain.Birthday
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *birthdayRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Birthday, error) {
	if mock.GetByIDFunc == nil {
		panic("birthdayRepoMock.GetByIDFunc: method is nil but birthdayRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *birthdayRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *birthdayRepoMock) List(ctx context.Context) ([]domain.Birthday, error) {
	if mock.ListFunc == nil {
		panic("birthdayRepoMock.ListFunc: method is nil but birthdayRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *birthdayRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *birthdayRepoMock) MarkApproved(ctx context.Context, id uuid.UUID, approvedAt time.Time, calendarEventID string) (*domain.Birthday, error) {
	if mock.MarkApprovedFunc == nil {
		panic("birthdayRepoMock.MarkApprovedFunc: method is nil but birthdayRepo.MarkApproved was just called")
	}
	callInfo := struct {
		ID              uuid.UUID
		ApprovedAt      time.Time
		CalendarEventID string
	}{ID: id, ApprovedAt: approvedAt, CalendarEventID: calendarEventID}
	mock.lockMarkApproved.Lock()
	mock.calls.MarkApproved = append(mock.calls.MarkApproved, callInfo)
	mock.lockMarkApproved.Unlock()
	return mock.MarkApprovedFunc(ctx, id, approvedAt, calendarEventID)
}

func (mock *birthdayRepoMock) MarkApprovedCalls() []struct {
	ID              uuid.UUID
	ApprovedAt      time.Time
	CalendarEventID string
} {
	mock.lockMarkApproved.RLock()
	calls := mock.calls.MarkApproved
	mock.lockMarkApproved.RUnlock()
	return calls
}

func (mock *birthdayRepoMock) MarkDeclined(ctx context.Context, id uuid.UUID, declinedAt time.Time) (*domain.Birthday, error) {
	if mock.MarkDeclinedFunc == nil {
		panic("birthdayRepoMock.MarkDeclinedFunc: method is nil but birthdayRepo.MarkDeclined was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		DeclinedAt time.Time
	}{ID: id, DeclinedAt: declinedAt}
	mock.lockMarkDeclined.Lock()
	mock.calls.MarkDeclined = append(mock.calls.MarkDeclined, callInfo)
	mock.lockMarkDeclined.Unlock()
	return mock.MarkDeclinedFunc(ctx, id, declinedAt)
}

func (mock *birthdayRepoMock) MarkDeclinedCalls() []struct {
	ID         uuid.UUID
	DeclinedAt time.Time
} {
	mock.lockMarkDeclined.RLock()
	calls := mock.calls.MarkDeclined
	mock.lockMarkDeclined.RUnlock()
	return calls
}
