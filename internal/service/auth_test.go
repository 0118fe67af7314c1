package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"libraryapi/internal/apperrors"
	"libraryapi/internal/model"
	"libraryapi/internal/testutil"
)

func TestAuth_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	tokMan := &MockTokenManager{}

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "mluukkai" && u.FavoriteGenre == "refactoring" && u.PasswordHash != "secret"
	})).Return(model.User{ID: uuid.New(), Username: "mluukkai", FavoriteGenre: "refactoring"}, nil)

	a := NewAuth(userStore, tokMan, testutil.MakeNoopLogger())

	user, err := a.CreateUser(ctx, "mluukkai", "secret", "refactoring")
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", user.Username)
	userStore.AssertExpectations(t)
}

func TestAuth_CreateUser_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	tokMan := &MockTokenManager{}

	userStore.On("Create", mock.Anything, mock.Anything).
		Return(model.User{}, model.ErrDuplicate)

	a := NewAuth(userStore, tokMan, testutil.MakeNoopLogger())

	_, err := a.CreateUser(ctx, "mluukkai", "secret", "refactoring")
	require.Error(t, err)

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apperrors.CodeBadUserInput, apiErr.Code)
	assert.Equal(t, "mluukkai", apiErr.Extensions()["invalidArgs"])
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	tokMan := &MockTokenManager{}
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore.On("GetByUsername", mock.Anything, "mluukkai").
		Return(model.User{ID: userID, Username: "mluukkai", PasswordHash: string(hash)}, nil)
	tokMan.On("Generate", userID, "mluukkai").Return("signed-token", nil)

	a := NewAuth(userStore, tokMan, testutil.MakeNoopLogger())

	token, err := a.Login(ctx, "mluukkai", "secret")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuth_Login_WrongCredentialsSymmetric(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		setup    func(*MockUserStore)
	}{
		{
			name:     "unknown username",
			username: "nobody",
			password: "secret",
			setup: func(us *MockUserStore) {
				us.On("GetByUsername", mock.Anything, "nobody").
					Return(model.User{}, model.ErrNotFound)
			},
		},
		{
			name:     "wrong password",
			username: "nobody",
			password: "wrong",
			setup: func(us *MockUserStore) {
				us.On("GetByUsername", mock.Anything, "nobody").
					Return(model.User{ID: uuid.New(), Username: "nobody", PasswordHash: string(hash)}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &MockUserStore{}
			tt.setup(userStore)

			a := NewAuth(userStore, &MockTokenManager{}, testutil.MakeNoopLogger())

			_, err := a.Login(ctx, tt.username, tt.password)
			require.Error(t, err)

			var apiErr *apperrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apperrors.CodeWrongCredentials, apiErr.Code)
			assert.Equal(t, "Login failed!", apiErr.Message)
			assert.Equal(t, tt.username, apiErr.Extensions()["invalidArgs"])
		})
	}
}

func TestAuth_Authenticate(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	tokMan := &MockTokenManager{}
	userID := uuid.New()

	tokMan.On("Parse", "good-token").Return(userID, nil)
	userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Username: "mluukkai"}, nil)

	a := NewAuth(userStore, tokMan, testutil.MakeNoopLogger())

	user, err := a.Authenticate(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuth_Authenticate_InvalidToken(t *testing.T) {
	ctx := context.Background()
	tokMan := &MockTokenManager{}
	tokMan.On("Parse", "bad-token").Return(uuid.Nil, errors.New("failed to parse token"))

	a := NewAuth(&MockUserStore{}, tokMan, testutil.MakeNoopLogger())

	_, err := a.Authenticate(ctx, "bad-token")
	require.Error(t, err)
}
