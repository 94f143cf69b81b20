package auth

import (
	"context"
	"sync"

	"github.com/hamzasarfraz/birthday-backend/internal/auth"
)

var _ oauthVerifier = &oauthVerifierMock{}

type oauthVerifierMock struct {
	AuthURLFunc    func(state string) string
	VerifyCodeFunc func(ctx context.Context, code string) (*auth.Identity, error)

	calls struct {
		AuthURL []struct {
			State string
		}
		VerifyCode []struct {
			Code string
		}
	}
	lockAuthURL    sync.RWMutex
	lockVerifyCode sync.RWMutex
}

func (mock *oauthVerifierMock) AuthURL(state string) string {
	if mock.AuthURLFunc == nil {
		panic("oauthVerifierMock.AuthURLFunc: method is nil but oauthVerifier.AuthURL was just called")
	}
	callInfo := struct {
		State string
	}{State: state}
	mock.lockAuthURL.Lock()
	mock.calls.AuthURL = append(mock.calls.AuthURL, callInfo)
	mock.lockAuthURL.Unlock()
	return mock.AuthURLFunc(state)
}

func (mock *oauthVerifierMock) AuthURLCalls() []struct {
	State string
} {
	mock.lockAuthURL.RLock()
	calls := mock.calls.AuthURL
	mock.lockAuthURL.RUnlock()
	return calls
}

func (mock *oauthVerifierMock) VerifyCode(ctx context.Context, code string) (*auth.Identity, error) {
	if mock.VerifyCodeFunc == nil {
		panic("oauthVerifierMock.VerifyCodeFunc: method is nil but oauthVerifier.VerifyCode was just called")
	}
	callInfo := struct {
		Code string
	}{Code: code}
	mock.lockVerifyCode.Lock()
	mock.calls.VerifyCode = append(mock.calls.VerifyCode, callInfo)
	mock.lockVerifyCode.Unlock()
	return mock.VerifyCodeFunc(ctx, code)
}

func (mock *oauthVerifierMock) VerifyCodeCalls() []struct {
	Code string
} {
	mock.lockVerifyCode.RLock()
	calls := mock.calls.VerifyCode
	mock.lockVerifyCode.RUnlock()
	return calls
}
