package model

import "context"

// ContextManager stores and retrieves the authenticated user of a
// request. An unset user means an anonymous request, which is not an
// error by itself.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
}
