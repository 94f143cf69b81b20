package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/hamzasarfraz/birthday-backend/internal/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/config"
)

// oauthVerifier defines the OAuth verification interface needed by the auth service.
type oauthVerifier interface {
	AuthURL(state string) string
	VerifyCode(ctx context.Context, code string) (*auth.Identity, error)
}

// sessionManager defines the session token interface needed by the auth service.
type sessionManager interface {
	Issue(email string) (string, error)
	TTL() time.Duration
}

// Service implements the admin access gate: a single allow-listed Google
// identity may hold a session, everyone else is turned away.
type Service struct {
	log      *slog.Logger
	oauth    oauthVerifier
	sessions sessionManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	oauth oauthVerifier,
	sessions sessionManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		oauth:    oauth,
		sessions: sessions,
		cfg:      cfg,
	}
}
