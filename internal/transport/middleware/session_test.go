package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	"github.com/hamzasarfraz/birthday-backend/pkg/ctxutil"
)

type stubValidator struct {
	email string
	err   error
}

func (s stubValidator) Validate(token string) (string, error) {
	return s.email, s.err
}

func TestSession_ValidCookie(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := ctxutil.AdminEmailFromCtx(r.Context())
		if !ok || email != "admin@example.com" {
			t.Errorf("expected admin identity in context, got %q (%v)", email, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Session(stubValidator{email: "admin@example.com"})(handler)

	req := httptest.NewRequest(http.MethodGet, "/admin-preview", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token"})
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestSession_NoCookie_Anonymous(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.AdminEmailFromCtx(r.Context()); ok {
			t.Error("expected anonymous context")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Session(stubValidator{email: "admin@example.com"})(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestSession_InvalidToken_Anonymous(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.AdminEmailFromCtx(r.Context()); ok {
			t.Error("expected anonymous context for invalid token")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Session(stubValidator{err: errors.New("token expired")})(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	if err := RequireAdmin(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous context: expected ErrUnauthorized, got %v", err)
	}

	ctx := ctxutil.WithAdminEmail(context.Background(), "admin@example.com")
	if err := RequireAdmin(ctx); err != nil {
		t.Errorf("admin context: unexpected error %v", err)
	}
}
