package repository

import "errors"

var (
	// ErrNotFound is returned when no rate or booking matches the requested id.
	ErrNotFound = errors.New("entity not found")
)
