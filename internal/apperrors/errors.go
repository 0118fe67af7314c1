// Package apperrors defines the structured errors the GraphQL layer
// returns to clients. The schema engine serializes Extensions() into
// the error's extensions object, so codes and supplementary detail
// reach clients with stable names.
package apperrors

// Error codes exposed in extensions.code.
const (
	CodeWrongCredentials    = "WRONG_CREDENTIALS"
	CodeUnauthenticatedUser = "UNAUTHENTICATED_USER"
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeBadBookTitle        = "BAD_BOOK_TITLE"
	CodeBadAuthorName       = "BAD_AUTHOR_NAME"
	CodeBadPublicationDate  = "BAD_BOOK_PUBLICATION_DATE"
	CodeBadBookGenres       = "BAD_BOOK_GENRES"
	CodeDuplicateBookTitle  = "DUPLICATE_BOOK_TITLE"
)

// APIError is a client-facing error with a stable code and optional
// extra detail carried in the extensions object.
type APIError struct {
	Code    string
	Message string
	Extra   map[string]interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// Extensions implements the resolver error contract of the GraphQL
// engine.
func (e *APIError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	for k, v := range e.Extra {
		ext[k] = v
	}
	return ext
}

// NewErrWrongCredentials reports a failed login. A wrong username and
// a wrong password are reported identically, both naming the supplied
// username as the invalid argument, so clients cannot probe which
// field was wrong.
func NewErrWrongCredentials(username string) *APIError {
	return &APIError{
		Code:    CodeWrongCredentials,
		Message: "Login failed!",
		Extra:   map[string]interface{}{"invalidArgs": username},
	}
}

// NewErrUnauthenticated reports a protected operation attempted
// without a valid bearer token.
func NewErrUnauthenticated() *APIError {
	return &APIError{
		Code:    CodeUnauthenticatedUser,
		Message: "User not authenticated.",
	}
}

// NewErrUsernameTaken reports a createUser attempt with an already
// registered username. The underlying store error is attached for
// diagnostics.
func NewErrUsernameTaken(username string, cause error) *APIError {
	extra := map[string]interface{}{"invalidArgs": username}
	if cause != nil {
		extra["error"] = cause.Error()
	}
	return &APIError{
		Code:    CodeBadUserInput,
		Message: "Creating the user failed!",
		Extra:   extra,
	}
}

// NewErrBookValidation reports a domain validation failure on addBook.
func NewErrBookValidation(code, detail string) *APIError {
	return &APIError{
		Code:    code,
		Message: "Creating a book failed!",
		Extra:   map[string]interface{}{"message": detail},
	}
}

// NewErrDuplicateBookTitle reports a title uniqueness violation
// surfaced by the store, with the store error attached.
func NewErrDuplicateBookTitle(title string, cause error) *APIError {
	extra := map[string]interface{}{"invalidArgs": title}
	if cause != nil {
		extra["error"] = cause.Error()
	}
	return &APIError{
		Code:    CodeDuplicateBookTitle,
		Message: "Creating a book failed!",
		Extra:   extra,
	}
}
