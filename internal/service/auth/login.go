package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hamzasarfraz/birthday-backend/internal/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/domain"
)

// LoginResult carries everything the transport needs to establish a session.
type LoginResult struct {
	Token    string
	TTL      time.Duration
	Identity *auth.Identity
}

// GenerateState produces a random state value for the OAuth round trip.
func GenerateState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// LoginURL returns the Google consent-screen URL for the given state.
func (s *Service) LoginURL(state string) string {
	return s.oauth.AuthURL(state)
}

// HandleCallback exchanges the OAuth code, checks the identity against the
// admin allowlist and issues a session token. A verified identity that is
// not the admin gets domain.ErrForbidden.
func (s *Service) HandleCallback(ctx context.Context, code string) (*LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	identity, err := s.oauth.VerifyCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth.HandleCallback oauth verification: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email != strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail)) {
		s.log.WarnContext(ctx, "login denied for non-admin identity",
			slog.String("email", email))
		return nil, fmt.Errorf("identity %s is not the admin: %w", email, domain.ErrForbidden)
	}

	token, err := s.sessions.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("auth.HandleCallback issue session: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("email", email))

	return &LoginResult{
		Token:    token,
		TTL:      s.sessions.TTL(),
		Identity: identity,
	}, nil
}
