package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookFilter restricts AllBooks. Nil fields mean no restriction on
// that dimension.
type BookFilter struct {
	Author *string
	Genre  *string
}

// BookStore defines persistence operations for books.
type BookStore interface {
	Create(ctx context.Context, book Book) (Book, error)
	All(ctx context.Context, filter BookFilter) ([]Book, error)
	Count(ctx context.Context) (int, error)
	Genres(ctx context.Context) ([]string, error)
}

// Book represents a catalog entry. Books are immutable after creation.
type Book struct {
	ID        uuid.UUID
	Title     string
	Published int32
	AuthorID  uuid.UUID
	Genres    []string
	CreatedAt time.Time
}
