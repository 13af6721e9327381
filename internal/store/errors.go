package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
	// ErrUnavailable marks a backend or connection fault, never a semantic outcome
	ErrUnavailable  = errors.New("storage unavailable")
	ErrInvalidField = errors.New("invalid field update")
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
