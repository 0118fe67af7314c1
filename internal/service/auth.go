package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"libraryapi/internal/apperrors"
	"libraryapi/internal/logger"
	"libraryapi/internal/model"
)

// Auth handles user registration, login and token verification.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// CreateUser hashes the password and persists a new user. A username
// already taken surfaces as the store's uniqueness violation, re-tagged
// as a client-facing input error.
func (a *Auth) CreateUser(ctx context.Context, username, password, favoriteGenre string) (model.User, error) {
	a.logger.Debug("Auth service: creating user",
		"username", username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:            uuid.New(),
		Username:      username,
		PasswordHash:  string(hash),
		FavoriteGenre: favoriteGenre,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			a.logger.Info("Auth service: username already taken",
				"username", username)
			return model.User{}, apperrors.NewErrUsernameTaken(username, err)
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user created",
		"username", username,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies credentials and issues a signed token. An unknown
// username and a wrong password produce the same error, naming the
// supplied username, so the response does not reveal which was wrong.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: login attempt",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login failed, unknown username",
			"username", username)
		return "", apperrors.NewErrWrongCredentials(username)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		a.logger.Info("Auth service: login failed, wrong password",
			"username", username)
		return "", apperrors.NewErrWrongCredentials(username)
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Username)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"username", username,
		"user_id", user.ID)

	return tokenString, nil
}

// Authenticate verifies a bearer token and loads the corresponding
// user.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	userID, err := a.tokenManager.Parse(tokenString)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to verify token: %w", err)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load token user: %w", err)
	}

	return user, nil
}

// SavedBooks returns the user's saved books in saved order.
func (a *Auth) SavedBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	books, err := a.userStore.SavedBooks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved books: %w", err)
	}
	return books, nil
}
