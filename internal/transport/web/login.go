package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	authsvc "github.com/hamzasarfraz/birthday-backend/internal/service/auth"
	"github.com/hamzasarfraz/birthday-backend/internal/transport/middleware"
)

// stateCookie holds the OAuth state between the redirect and the callback.
const stateCookie = "bb_oauth_state"

// Login handles GET /login and redirects to the Google consent screen.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := authsvc.GenerateState()
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "could not start the login flow")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.auth.LoginURL(state), http.StatusFound)
}

// Callback handles GET /auth/google/callback.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || state == "" || cookie.Value != state {
		h.renderError(w, r, http.StatusBadRequest, "login state mismatch, please try again")
		return
	}
	h.clearCookie(w, stateCookie)

	result, err := h.auth.HandleCallback(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Redirect(w, r, "/access-denied", http.StatusFound)
			return
		}
		h.log.ErrorContext(r.Context(), "oauth callback failed", slog.String("error", err.Error()))
		h.renderError(w, r, http.StatusBadGateway, "could not complete the login, please try again")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(result.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/admin-preview", http.StatusFound)
}

// Logout handles GET /logout. The session cookie is dropped and the
// browser is sent back to the login entry point.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.SessionCookie)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
