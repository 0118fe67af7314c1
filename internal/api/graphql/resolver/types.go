package resolver

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"libraryapi/internal/model"
)

// BookResolver resolves the Book type.
type BookResolver struct {
	book    model.Book
	catalog CatalogService
}

func (r *BookResolver) ID() graphql.ID {
	return graphql.ID(r.book.ID.String())
}

func (r *BookResolver) Title() string {
	return r.book.Title
}

func (r *BookResolver) Published() int32 {
	return r.book.Published
}

func (r *BookResolver) Genres() []string {
	return r.book.Genres
}

func (r *BookResolver) Author(ctx context.Context) (*AuthorResolver, error) {
	author, err := r.catalog.AuthorByID(ctx, r.book.AuthorID)
	if err != nil {
		return nil, err
	}
	return &AuthorResolver{author: author, catalog: r.catalog}, nil
}

// AuthorResolver resolves the Author type.
type AuthorResolver struct {
	author  model.Author
	catalog CatalogService
}

func (r *AuthorResolver) ID() graphql.ID {
	return graphql.ID(r.author.ID.String())
}

func (r *AuthorResolver) Name() string {
	return r.author.Name
}

func (r *AuthorResolver) Born() *int32 {
	return r.author.Born
}

// BookCount is derived by counting the author's books at read time.
func (r *AuthorResolver) BookCount(ctx context.Context) (int32, error) {
	count, err := r.catalog.BookCountByAuthor(ctx, r.author.ID)
	if err != nil {
		return 0, err
	}
	return int32(count), nil
}

// UserResolver resolves the User type.
type UserResolver struct {
	user    model.User
	auth    AuthService
	catalog CatalogService
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID.String())
}

func (r *UserResolver) Username() string {
	return r.user.Username
}

func (r *UserResolver) FavoriteGenre() string {
	return r.user.FavoriteGenre
}

func (r *UserResolver) SavedBooks(ctx context.Context) ([]*BookResolver, error) {
	books, err := r.auth.SavedBooks(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*BookResolver, 0, len(books))
	for _, book := range books {
		resolvers = append(resolvers, &BookResolver{book: book, catalog: r.catalog})
	}
	return resolvers, nil
}

// TokenResolver resolves the Token type.
type TokenResolver struct {
	value string
}

func (r *TokenResolver) Value() string {
	return r.value
}
