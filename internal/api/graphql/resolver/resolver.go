// Package resolver maps GraphQL fields onto the auth and catalog
// services.
package resolver

import (
	"context"

	"github.com/google/uuid"

	"libraryapi/internal/logger"
	"libraryapi/internal/model"
	"libraryapi/internal/validation"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	CreateUser(ctx context.Context, username, password, favoriteGenre string) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	SavedBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error)
}

// CatalogService defines book and author operations.
type CatalogService interface {
	AddBook(ctx context.Context, input validation.BookInput) (model.Book, error)
	AllBooks(ctx context.Context, author, genre *string) ([]model.Book, error)
	AllAuthors(ctx context.Context) ([]model.Author, error)
	AuthorByID(ctx context.Context, id uuid.UUID) (model.Author, error)
	BookCountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	AllGenres(ctx context.Context) ([]string, error)
	BookCount(ctx context.Context) (int, error)
	AuthorCount(ctx context.Context) (int, error)
}

// Root is the root resolver behind Query and Mutation.
type Root struct {
	auth           AuthService
	catalog        CatalogService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRoot creates the root resolver.
func NewRoot(auth AuthService, catalog CatalogService, contextManager model.ContextManager, logger *logger.Logger) *Root {
	return &Root{
		auth:           auth,
		catalog:        catalog,
		contextManager: contextManager,
		logger:         logger,
	}
}
