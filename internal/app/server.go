package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hamzasarfraz/birthday-backend/internal/config"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/middleware"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/rest"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/web"
)

type server struct {
	http *http.Server
	cfg  config.ServerConfig
	log  *slog.Logger
}

// newServer builds the route table and wraps it in the middleware chain.
func newServer(
	cfg *config.Config,
	logger *slog.Logger,
	sessions interface {
		Validate(token string) (string, error)
	},
	birthdays *rest.BirthdayHandler,
	health *rest.HealthHandler,
	pages *web.Handler,
) *server {
	mux := http.NewServeMux()

	// HTML surface.
	mux.HandleFunc("GET /{$}", pages.Form)
	mux.HandleFunc("GET /login", pages.Login)
	mux.HandleFunc("GET /auth/google/callback", pages.Callback)
	mux.HandleFunc("GET /logout", pages.Logout)
	mux.HandleFunc("GET /access-denied", pages.AccessDenied)
	mux.HandleFunc("GET /admin-preview", pages.AdminPreview)
	mux.HandleFunc("GET /approve/{id}", pages.Approve)
	mux.HandleFunc("GET /decline/{id}", pages.Decline)

	// JSON surface. /submit serves both: form posts render HTML, JSON
	// bodies get a JSON response; both drive the same service call.
	mux.HandleFunc("POST /submit", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			birthdays.Submit(w, r)
			return
		}
		pages.Submit(w, r)
	})
	mux.HandleFunc("GET /birthdays", birthdays.List)
	mux.HandleFunc("POST /approve/{id}", birthdays.Approve)
	mux.HandleFunc("POST /decline/{id}", birthdays.Decline)

	// Probes.
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Session(sessions),
	)(mux)

	return &server{
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		cfg: cfg.Server,
		log: logger,
	}
}

// run serves until the context is cancelled, then drains connections
// within the configured shutdown timeout.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
