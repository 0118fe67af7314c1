package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/api/graphql/reqctx"
	"libraryapi/internal/model"
	"libraryapi/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	authService := &mockAuthService{}
	ctxMgr := reqctx.NewManager()
	mw := NewAuthenticate(authService, ctxMgr, testutil.MakeNoopLogger())

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		_, ok := ctxMgr.GetUserFromContext(r.Context())
		assert.False(t, ok)
	})

	rec := httptest.NewRecorder()
	mw.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authService := &mockAuthService{}
	ctxMgr := reqctx.NewManager()
	user := model.User{ID: uuid.New(), Username: "mluukkai"}
	authService.On("Authenticate", mock.Anything, "good-token").Return(user, nil)

	mw := NewAuthenticate(authService, ctxMgr, testutil.MakeNoopLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := ctxMgr.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, user.ID, got.ID)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")

	rec := httptest.NewRecorder()
	mw.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_PrefixCaseInsensitive(t *testing.T) {
	authService := &mockAuthService{}
	ctxMgr := reqctx.NewManager()
	authService.On("Authenticate", mock.Anything, "good-token").
		Return(model.User{ID: uuid.New()}, nil)

	mw := NewAuthenticate(authService, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	mw.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	authService.AssertExpectations(t)
}

func TestAuthenticate_InvalidTokenFailsFast(t *testing.T) {
	authService := &mockAuthService{}
	ctxMgr := reqctx.NewManager()
	authService.On("Authenticate", mock.Anything, "bad-token").
		Return(model.User{}, errors.New("failed to verify token"))

	mw := NewAuthenticate(authService, ctxMgr, testutil.MakeNoopLogger())

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer bad-token")

	rec := httptest.NewRecorder()
	mw.Handle(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Errors []struct {
			Message    string                 `json:"message"`
			Extensions map[string]interface{} `json:"extensions"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "User not authenticated.", body.Errors[0].Message)
	assert.Equal(t, "UNAUTHENTICATED_USER", body.Errors[0].Extensions["code"])
}
