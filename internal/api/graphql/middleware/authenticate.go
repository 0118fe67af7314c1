package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"libraryapi/internal/apperrors"
	"libraryapi/internal/logger"
	"libraryapi/internal/model"
)

const bearerPrefix = "bearer "

// AuthService resolves a bearer token to a user.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate reads an optional bearer token and injects the current
// user into the request context. A missing header is an anonymous
// request; a present but invalid token rejects the request before any
// resolver runs.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Handle wraps next with bearer token verification.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := header[len(bearerPrefix):]
		user, err := m.authService.Authenticate(r.Context(), tokenString)
		if err != nil {
			m.logger.Info("authentication failed",
				"error", err.Error())
			writeAuthError(w)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter) {
	apiErr := apperrors.NewErrUnauthenticated()
	body := map[string]interface{}{
		"errors": []map[string]interface{}{
			{
				"message":    apiErr.Message,
				"extensions": apiErr.Extensions(),
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(body)
}
