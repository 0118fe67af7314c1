package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	SavedBooks(ctx context.Context, userID uuid.UUID) ([]Book, error)
}

// User represents a registered user. PasswordHash never leaves the
// service layer.
type User struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	FavoriteGenre string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
