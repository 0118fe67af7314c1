package resolver

import "context"

// BookCount resolves the total number of books, recomputed per call.
func (r *Root) BookCount(ctx context.Context) (int32, error) {
	count, err := r.catalog.BookCount(ctx)
	if err != nil {
		return 0, err
	}
	return int32(count), nil
}

// AuthorCount resolves the total number of authors, recomputed per
// call.
func (r *Root) AuthorCount(ctx context.Context) (int32, error) {
	count, err := r.catalog.AuthorCount(ctx)
	if err != nil {
		return 0, err
	}
	return int32(count), nil
}

// AllBooks resolves books filtered by author name and genre
// membership. Either filter may be absent.
func (r *Root) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*BookResolver, error) {
	books, err := r.catalog.AllBooks(ctx, args.Author, args.Genre)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*BookResolver, 0, len(books))
	for _, book := range books {
		resolvers = append(resolvers, &BookResolver{book: book, catalog: r.catalog})
	}
	return resolvers, nil
}

// AllAuthors resolves every author; each author's book count is
// computed when the field is requested.
func (r *Root) AllAuthors(ctx context.Context) ([]*AuthorResolver, error) {
	authors, err := r.catalog.AllAuthors(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*AuthorResolver, 0, len(authors))
	for _, author := range authors {
		resolvers = append(resolvers, &AuthorResolver{author: author, catalog: r.catalog})
	}
	return resolvers, nil
}

// AllGenres resolves the distinct genres across all books.
func (r *Root) AllGenres(ctx context.Context) ([]string, error) {
	return r.catalog.AllGenres(ctx)
}

// Me resolves the authenticated user, or null for anonymous requests.
func (r *Root) Me(ctx context.Context) (*UserResolver, error) {
	user, ok := r.contextManager.GetUserFromContext(ctx)
	if !ok {
		return nil, nil
	}
	return &UserResolver{user: user, auth: r.auth, catalog: r.catalog}, nil
}
