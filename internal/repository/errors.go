package repository

import "errors"

var (
	// ErrNotFound is returned when the target row does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert or update violates a uniqueness constraint
	ErrConflict = errors.New("conflict")
)
