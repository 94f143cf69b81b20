package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hamzasarfraz/birthday-backend/internal/adapter/google"
	"github.com/hamzasarfraz/birthday-backend/internal/adapter/postgres"
	pgbirthday "github.com/hamzasarfraz/birthday-backend/internal/adapter/postgres/birthday"
	"github.com/hamzasarfraz/birthday-backend/internal/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/config"
	authsvc "github.com/hamzasarfraz/birthday-backend/internal/service/auth"
	birthdaysvc "github.com/hamzasarfraz/birthday-backend/internal/service/birthday"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/rest"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/web"
)

// Run is the application entry point. It loads configuration, wires the
// adapters, services and handlers together, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	credentials, err := calendarCredentials(cfg.Calendar)
	if err != nil {
		return err
	}

	calendar, err := google.NewCalendarClient(ctx, cfg.Calendar.CalendarID, credentials, logger)
	if err != nil {
		return fmt.Errorf("create calendar client: %w", err)
	}

	verifier := google.NewVerifier(
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.Auth.GoogleRedirectURI,
		logger,
	)
	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)

	birthdayRepo := pgbirthday.New(pool)

	birthdayService := birthdaysvc.NewService(logger, birthdayRepo, calendar)
	authService := authsvc.NewService(logger, verifier, sessions, cfg.Auth)

	birthdayHandler := rest.NewBirthdayHandler(birthdayService, logger)
	healthHandler := rest.NewHealthHandler(pool, Version)
	webHandler, err := web.NewHandler(birthdayService, authService, secureCookies(cfg.Server.BaseURL), logger)
	if err != nil {
		return fmt.Errorf("create web handler: %w", err)
	}

	srv := newServer(cfg, logger, sessions, birthdayHandler, healthHandler, webHandler)
	return srv.run(ctx)
}

// calendarCredentials resolves the service-account key, preferring the
// inline JSON over a key file on disk.
func calendarCredentials(cfg config.CalendarConfig) ([]byte, error) {
	if cfg.CredentialsJSON != "" {
		return []byte(cfg.CredentialsJSON), nil
	}
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read calendar credentials: %w", err)
	}
	return data, nil
}

// secureCookies decides the Secure cookie flag from the public base URL.
func secureCookies(baseURL string) bool {
	return strings.HasPrefix(baseURL, "https://")
}
