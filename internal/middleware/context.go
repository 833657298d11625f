package middleware

import (
	"context"

	"github.com/anupks5942/lms-backend/internal/models"
)

type contextKey struct{}

// WithUser returns a context carrying the authenticated user. The value is a
// copy; handlers can never mutate shared state through it.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFrom extracts the authenticated user attached by Authenticate.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(contextKey{}).(models.User)
	return user, ok
}
