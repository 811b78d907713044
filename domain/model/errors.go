package model

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested code.
	ErrNotFound = errors.New("video not found")
	// ErrDuplicateCode is returned when a create collides with an existing code.
	ErrDuplicateCode = errors.New("video already on database")
)
