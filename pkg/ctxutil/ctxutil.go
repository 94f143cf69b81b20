package ctxutil

import "context"

type ctxKey string

const (
	adminEmailKey ctxKey = "admin_email"
	requestIDKey  ctxKey = "request_id"
)

// WithAdminEmail stores the authenticated administrator identity in the context.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// AdminEmailFromCtx extracts the administrator identity from the context.
// Returns "" and false if no authenticated session is attached.
func AdminEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
