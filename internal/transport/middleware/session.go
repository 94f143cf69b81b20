package middleware

import (
	"context"
	"net/http"

	"github.com/hamzasarfraz/birthday-backend/internal/domain"
	"github.com/hamzasarfraz/birthday-backend/pkg/ctxutil"
)

// SessionCookie is the name of the HTTP-only cookie carrying the admin
// session token.
const SessionCookie = "bb_session"

type sessionValidator interface {
	Validate(token string) (string, error)
}

// Session returns middleware that resolves the session cookie into an
// admin identity on the context. Requests without a valid session pass
// through anonymously; gating happens in the handlers.
func Session(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			email, err := validator.Validate(cookie.Value)
			if err != nil {
				// Stale or tampered cookie. Treat as anonymous rather
				// than failing the whole request.
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithAdminEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns domain.ErrUnauthorized if the context carries no
// authenticated admin identity. Use in handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.AdminEmailFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
