package resolver

import (
	"context"

	"libraryapi/internal/apperrors"
	"libraryapi/internal/validation"
)

// CreateUser registers a new user. The password hash never appears in
// the response.
func (r *Root) CreateUser(ctx context.Context, args struct {
	Username      string
	Password      string
	FavoriteGenre string
}) (*UserResolver, error) {
	user, err := r.auth.CreateUser(ctx, args.Username, args.Password, args.FavoriteGenre)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user, auth: r.auth, catalog: r.catalog}, nil
}

// Login verifies credentials and returns a signed bearer token.
func (r *Root) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*TokenResolver, error) {
	tokenString, err := r.auth.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	return &TokenResolver{value: tokenString}, nil
}

// AddBook creates a book for the authenticated user, creating the
// author on demand.
func (r *Root) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}) (*BookResolver, error) {
	if _, ok := r.contextManager.GetUserFromContext(ctx); !ok {
		return nil, apperrors.NewErrUnauthenticated()
	}

	book, err := r.catalog.AddBook(ctx, validation.BookInput{
		Title:     args.Title,
		Author:    args.Author,
		Published: args.Published,
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, err
	}

	return &BookResolver{book: book, catalog: r.catalog}, nil
}
