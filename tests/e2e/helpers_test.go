//go:build e2e

package e2e_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/google"
	"github.com/hamzasarfraz/birthday-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/hamzasarfraz/birthday-backend/internal/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/config"
	authsvc "github.com/hamzasarfraz/birthday-backend/internal/service/auth"
	birthdaysvc "github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/middleware"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/rest"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/web"
	pgbirthday "github.com/hamzasarfraz/birthday-backend/internal/adapter/postgres/birthday"
)

const adminEmail = "admin@example.com"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	sessions *authpkg.SessionManager
}

// adminCookie returns a valid session cookie for the allow-listed admin.
func (ts *testServer) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := ts.sessions.Issue(adminEmail)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// stubCalendar stands in for the Calendar API and always succeeds.
type stubCalendar struct{}

func (stubCalendar) InsertEvent(_ context.Context, _ google.Event) (string, error) {
	return "e2e-event-1", nil
}

// stubVerifier stands in for Google OAuth. The login round trip is not
// exercised end to end; sessions are issued directly.
type stubVerifier struct{}

func (stubVerifier) AuthURL(state string) string {
	return "https://accounts.google.com/o/oauth2/v2/auth?state=" + state
}

func (stubVerifier) VerifyCode(_ context.Context, _ string) (*authpkg.Identity, error) {
	return nil, fmt.Errorf("stub: oauth not supported in tests")
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	sessions := authpkg.NewSessionManager("test-secret-at-least-32-chars-long!!", "test-issuer", time.Hour)

	repo := pgbirthday.New(pool)
	birthdayService := birthdaysvc.NewService(logger, repo, stubCalendar{})
	authService := authsvc.NewService(logger, stubVerifier{}, sessions, config.AuthConfig{
		AdminEmail: adminEmail,
	})

	birthdayHandler := rest.NewBirthdayHandler(birthdayService, logger)
	healthHandler := rest.NewHealthHandler(pool, "e2e")
	webHandler, err := web.NewHandler(birthdayService, authService, false, logger)
	if err != nil {
		t.Fatalf("create web handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", webHandler.Form)
	mux.HandleFunc("GET /login", webHandler.Login)
	mux.HandleFunc("GET /auth/google/callback", webHandler.Callback)
	mux.HandleFunc("GET /logout", webHandler.Logout)
	mux.HandleFunc("GET /access-denied", webHandler.AccessDenied)
	mux.HandleFunc("GET /admin-preview", webHandler.AdminPreview)
	mux.HandleFunc("GET /approve/{id}", webHandler.Approve)
	mux.HandleFunc("GET /decline/{id}", webHandler.Decline)
	mux.HandleFunc("POST /submit", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			birthdayHandler.Submit(w, r)
			return
		}
		webHandler.Submit(w, r)
	})
	mux.HandleFunc("GET /birthdays", birthdayHandler.List)
	mux.HandleFunc("POST /approve/{id}", birthdayHandler.Approve)
	mux.HandleFunc("POST /decline/{id}", birthdayHandler.Decline)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Session(sessions),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testServer{
		URL:      srv.URL,
		Client:   client,
		Pool:     pool,
		sessions: sessions,
	}
}
