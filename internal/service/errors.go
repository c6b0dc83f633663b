package service

import "errors"

var (
	// ErrValidation covers missing or malformed caller-supplied fields.
	ErrValidation = errors.New("missing or malformed transaction field")
	// ErrInvalidID is returned before any store lookup when an identifier
	// is not in the accepted shape.
	ErrInvalidID = errors.New("invalid transaction id")
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("transaction not found")
)
