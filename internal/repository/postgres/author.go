package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"libraryapi/internal/model"
)

var _ model.AuthorStore = (*AuthorRepository)(nil)

type AuthorRepository struct {
	db *Connection
}

func NewAuthorRepository(db *Connection) *AuthorRepository {
	return &AuthorRepository{
		db: db,
	}
}

func (r *AuthorRepository) GetByName(ctx context.Context, name string) (model.Author, error) {
	var author model.Author
	query := `SELECT id, name, born, created_at FROM authors WHERE name = $1`

	err := r.db.QueryRow(ctx, query, name).Scan(
		&author.ID, &author.Name, &author.Born, &author.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrNotFound
		}
		return model.Author{}, fmt.Errorf("failed to get author by name: %w", err)
	}

	return author, nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Author, error) {
	var author model.Author
	query := `SELECT id, name, born, created_at FROM authors WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&author.ID, &author.Name, &author.Born, &author.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrNotFound
		}
		return model.Author{}, fmt.Errorf("failed to get author by id: %w", err)
	}

	return author, nil
}

func (r *AuthorRepository) Create(ctx context.Context, author model.Author) (model.Author, error) {
	query := `INSERT INTO authors (id, name, born, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, born, created_at`

	var savedAuthor model.Author
	err := r.db.QueryRow(ctx, query,
		author.ID, author.Name, author.Born, author.CreatedAt,
	).Scan(
		&savedAuthor.ID, &savedAuthor.Name, &savedAuthor.Born, &savedAuthor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Author{}, fmt.Errorf("author %q: %w", author.Name, model.ErrDuplicate)
		}
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}

	return savedAuthor, nil
}

func (r *AuthorRepository) All(ctx context.Context) ([]model.Author, error) {
	query := `SELECT id, name, born, created_at FROM authors ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var author model.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Born, &author.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, nil
}

func (r *AuthorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

// BookCount computes the derived per-author book count at read time.
func (r *AuthorRepository) BookCount(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	query := `SELECT count(*) FROM books WHERE author_id = $1`
	if err := r.db.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}
	return count, nil
}
