package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by stores when a uniqueness constraint
	// rejects an insert.
	ErrDuplicate = errors.New("duplicate value")
)
