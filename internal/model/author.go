package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthorStore defines persistence operations for authors.
type AuthorStore interface {
	GetByName(ctx context.Context, name string) (Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (Author, error)
	Create(ctx context.Context, author Author) (Author, error)
	All(ctx context.Context) ([]Author, error)
	Count(ctx context.Context) (int, error)
	BookCount(ctx context.Context, authorID uuid.UUID) (int, error)
}

// Author represents a book author. Authors are created implicitly the
// first time a book references them. The per-author book count is
// derived at read time, never stored.
type Author struct {
	ID        uuid.UUID
	Name      string
	Born      *int32
	CreatedAt time.Time
}
