package config

import (
	"fmt"
	"net/mail"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}

	if _, err := mail.ParseAddress(c.Auth.AdminEmail); err != nil {
		return fmt.Errorf("auth.admin_email: %w", err)
	}

	if !c.hasGoogleOAuth() {
		return fmt.Errorf("google oauth credentials must be configured (client id, secret, redirect uri)")
	}

	if strings.TrimSpace(c.Calendar.CalendarID) == "" {
		return fmt.Errorf("calendar.calendar_id is required")
	}
	if c.Calendar.CredentialsFile == "" && c.Calendar.CredentialsJSON == "" {
		return fmt.Errorf("calendar credentials must be configured (file or inline json)")
	}

	return nil
}

func (c *Config) hasGoogleOAuth() bool {
	return c.Auth.GoogleClientID != "" && c.Auth.GoogleClientSecret != "" && c.Auth.GoogleRedirectURI != ""
}
