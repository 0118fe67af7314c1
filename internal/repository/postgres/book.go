package postgres

import (
	"context"
	"fmt"

	"libraryapi/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	query := `INSERT INTO books (id, title, published, author_id, genres, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, published, author_id, genres, created_at`

	var savedBook model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.Title, book.Published, book.AuthorID, book.Genres, book.CreatedAt,
	).Scan(
		&savedBook.ID, &savedBook.Title, &savedBook.Published,
		&savedBook.AuthorID, &savedBook.Genres, &savedBook.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, fmt.Errorf("title %q: %w", book.Title, model.ErrDuplicate)
		}
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return savedBook, nil
}

// All lists books matching the filter. The author filter matches the
// author's name, the genre filter matches membership in the genre set.
// Both apply conjunctively; a nil filter field applies no restriction.
func (r *BookRepository) All(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	query := `SELECT b.id, b.title, b.published, b.author_id, b.genres, b.created_at
			  FROM books b
			  JOIN authors a ON a.id = b.author_id
			  WHERE ($1::text IS NULL OR a.name = $1)
			    AND ($2::text IS NULL OR $2 = ANY(b.genres))
			  ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, filter.Author, filter.Genre)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Published, &book.AuthorID,
			&book.Genres, &book.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// Genres returns the distinct genre strings across all books.
func (r *BookRepository) Genres(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT unnest(genres) AS genre FROM books ORDER BY genre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genres: %w", err)
	}

	return genres, nil
}
