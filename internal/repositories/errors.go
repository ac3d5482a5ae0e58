package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup by key matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
