package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"libraryapi/internal/apperrors"
	"libraryapi/internal/logger"
	"libraryapi/internal/model"
	"libraryapi/internal/validation"
)

// Catalog handles book and author operations.
type Catalog struct {
	bookStore   model.BookStore
	authorStore model.AuthorStore
	logger      *logger.Logger
}

// NewCatalog creates a new Catalog service.
func NewCatalog(bookStore model.BookStore, authorStore model.AuthorStore, logger *logger.Logger) *Catalog {
	return &Catalog{
		bookStore:   bookStore,
		authorStore: authorStore,
		logger:      logger,
	}
}

// AddBook validates the input, resolves or creates the author by name
// and persists the book. Author and book creation are two separate
// writes; a crash between them can leave an author with zero books.
// A duplicate title is enforced by the store's unique index, not by a
// pre-check, and is re-tagged for the client.
func (c *Catalog) AddBook(ctx context.Context, input validation.BookInput) (model.Book, error) {
	c.logger.Debug("Catalog service: adding book",
		"title", input.Title,
		"author", input.Author)

	if failure := validation.ValidateBook(input); failure != nil {
		c.logger.Info("Catalog service: book rejected",
			"title", input.Title,
			"kind", failure.Kind)
		return model.Book{}, apperrors.NewErrBookValidation(failure.Kind, failure.Detail)
	}

	author, err := c.findOrCreateAuthor(ctx, input.Author)
	if err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		ID:        uuid.New(),
		Title:     input.Title,
		Published: input.Published,
		AuthorID:  author.ID,
		Genres:    input.Genres,
		CreatedAt: time.Now(),
	}

	savedBook, err := c.bookStore.Create(ctx, book)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			c.logger.Info("Catalog service: duplicate book title",
				"title", input.Title)
			return model.Book{}, apperrors.NewErrDuplicateBookTitle(input.Title, err)
		}
		c.logger.Error("Catalog service: failed to create book",
			"title", input.Title,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	c.logger.Info("Catalog service: book added",
		"title", savedBook.Title,
		"book_id", savedBook.ID,
		"author_id", author.ID)

	return savedBook, nil
}

// findOrCreateAuthor resolves an author by name, creating one when
// absent. A concurrent create losing the name's unique index race
// falls back to reading the winner's row.
func (c *Catalog) findOrCreateAuthor(ctx context.Context, name string) (model.Author, error) {
	author, err := c.authorStore.GetByName(ctx, name)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Author{}, fmt.Errorf("failed to get author by name: %w", err)
	}

	author, err = c.authorStore.Create(ctx, model.Author{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	})
	if errors.Is(err, model.ErrDuplicate) {
		return c.authorStore.GetByName(ctx, name)
	}
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}

	c.logger.Info("Catalog service: author created",
		"name", name,
		"author_id", author.ID)

	return author, nil
}

// AllBooks lists books matching the optional author and genre filters.
// The result is recomputed per call.
func (c *Catalog) AllBooks(ctx context.Context, author, genre *string) ([]model.Book, error) {
	books, err := c.bookStore.All(ctx, model.BookFilter{Author: author, Genre: genre})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// AllAuthors lists every author.
func (c *Catalog) AllAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := c.authorStore.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// AuthorByID loads a single author.
func (c *Catalog) AuthorByID(ctx context.Context, id uuid.UUID) (model.Author, error) {
	author, err := c.authorStore.GetByID(ctx, id)
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

// BookCountByAuthor computes the author's book count at read time.
func (c *Catalog) BookCountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	count, err := c.authorStore.BookCount(ctx, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to count author books: %w", err)
	}
	return count, nil
}

// AllGenres returns the distinct genres across all books.
func (c *Catalog) AllGenres(ctx context.Context) ([]string, error) {
	genres, err := c.bookStore.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// BookCount returns the total book count, recomputed per call.
func (c *Catalog) BookCount(ctx context.Context) (int, error) {
	count, err := c.bookStore.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// AuthorCount returns the total author count, recomputed per call.
func (c *Catalog) AuthorCount(ctx context.Context) (int, error) {
	count, err := c.authorStore.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}
