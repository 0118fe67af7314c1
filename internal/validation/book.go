// Package validation checks candidate book fields before they reach
// the store. Title uniqueness is deliberately not checked here; the
// store's unique index enforces it and the resolver layer re-tags the
// resulting constraint violation.
package validation

import "fmt"

// Failure kinds, matching the error codes exposed to clients.
const (
	KindBadBookTitle       = "BAD_BOOK_TITLE"
	KindBadAuthorName      = "BAD_AUTHOR_NAME"
	KindBadPublicationDate = "BAD_BOOK_PUBLICATION_DATE"
	KindBadBookGenres      = "BAD_BOOK_GENRES"
)

const (
	minTitleLength  = 1
	minAuthorLength = 1
)

// BookInput holds the candidate fields of an addBook call.
type BookInput struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}

// Failure describes a single validation failure. Rules run in a fixed
// order and the first failure wins.
type Failure struct {
	Kind   string
	Detail string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// ValidateBook checks the candidate fields in order: title, author
// name, publication year, genres. Returns nil when all rules pass.
func ValidateBook(input BookInput) *Failure {
	if len(input.Title) < minTitleLength {
		return &Failure{Kind: KindBadBookTitle, Detail: "book title must not be empty"}
	}
	if len(input.Author) < minAuthorLength {
		return &Failure{Kind: KindBadAuthorName, Detail: "author name must not be empty"}
	}
	if input.Published < 0 {
		return &Failure{Kind: KindBadPublicationDate, Detail: "publication year must not be negative"}
	}
	if len(input.Genres) == 0 {
		return &Failure{Kind: KindBadBookGenres, Detail: "book must have at least one genre"}
	}
	return nil
}
