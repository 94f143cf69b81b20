package birthday

import (
	"context"
	"sync"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/google"
)

var _ calendarClient = &calendarClientMock{}

type calendarClientMock struct {
	InsertEventFunc func(ctx context.Context, event google.Event) (string, error)

	calls struct {
		InsertEvent []struct {
			Event google.Event
		}
	}
	lockInsertEvent sync.RWMutex
}

func (mock *calendarClientMock) InsertEvent(ctx context.Context, event google.Event) (string, error) {
	if mock.InsertEventFunc == nil {
		panic("calendarClientMock.InsertEventFunc: method is nil but calendarClient.InsertEvent was just called")
	}
	callInfo := struct {
		Event google.Event
	}{Event: event}
	mock.lockInsertEvent.Lock()
	mock.calls.InsertEvent = append(mock.calls.InsertEvent, callInfo)
	mock.lockInsertEvent.Unlock()
	return mock.InsertEventFunc(ctx, event)
}

func (mock *calendarClientMock) InsertEventCalls() []struct {
	Event google.Event
} {
	mock.lockInsertEvent.RLock()
	calls := mock.calls.InsertEvent
	mock.lockInsertEvent.RUnlock()
	return calls
}
