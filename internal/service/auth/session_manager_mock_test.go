package auth

import (
	"sync"
	"time"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	IssueFunc func(email string) (string, error)
	TTLFunc   func() time.Duration

	calls struct {
		Issue []struct {
			Email string
		}
		TTL []struct{}
	}
	lockIssue sync.RWMutex
	lockTTL   sync.RWMutex
}

func (mock *sessionManagerMock) Issue(email string) (string, error) {
	if mock.IssueFunc == nil {
		panic("sessionManagerMock.IssueFunc: method is nil but sessionManager.Issue was just called")
	}
	callInfo := struct {
		Email string
	}{Email: email}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(email)
}

func (mock *sessionManagerMock) IssueCalls() []struct {
	Email string
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *sessionManagerMock) TTL() time.Duration {
	if mock.TTLFunc == nil {
		panic("sessionManagerMock.TTLFunc: method is nil but sessionManager.TTL was just called")
	}
	mock.lockTTL.Lock()
	mock.calls.TTL = append(mock.calls.TTL, struct{}{})
	mock.lockTTL.Unlock()
	return mock.TTLFunc()
}

func (mock *sessionManagerMock) TTLCalls() []struct{} {
	mock.lockTTL.RLock()
	calls := mock.calls.TTL
	mock.lockTTL.RUnlock()
	return calls
}
