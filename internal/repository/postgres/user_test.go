package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewAuthorRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAuthorRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewBookRepository(t *testing.T) {
	db := &Connection{}
	repo := NewBookRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
