package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"libraryapi/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) SavedBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Book), args.Error(1)
}

// MockAuthorStore mocks the AuthorStore interface
type MockAuthorStore struct {
	mock.Mock
}

func (m *MockAuthorStore) GetByName(ctx context.Context, name string) (model.Author, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *MockAuthorStore) GetByID(ctx context.Context, id uuid.UUID) (model.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *MockAuthorStore) Create(ctx context.Context, author model.Author) (model.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *MockAuthorStore) All(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *MockAuthorStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAuthorStore) BookCount(ctx context.Context, authorID uuid.UUID) (int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Error(1)
}

// MockBookStore mocks the BookStore interface
type MockBookStore struct {
	mock.Mock
}

func (m *MockBookStore) Create(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockBookStore) All(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBookStore) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockTokenManager mocks the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(userID uuid.UUID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
