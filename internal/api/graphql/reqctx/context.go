// Package reqctx carries the authenticated user through a request's
// context.
package reqctx

import (
	"context"

	"libraryapi/internal/model"
)

type contextKey int

const currentUserKey contextKey = iota

// Manager implements model.ContextManager over context values.
type Manager struct{}

// NewManager creates a new request context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// GetUserFromContext retrieves the authenticated user. The second
// return is false for anonymous requests.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(currentUserKey).(model.User)
	return user, ok
}
