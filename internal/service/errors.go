package service

import "errors"

var (
	// ErrCodeSpaceExhausted is returned when every random candidate collided.
	// It always wraps the last store.ErrAlreadyExists.
	ErrCodeSpaceExhausted = errors.New("max attempts exceeded for code generation")

	// ErrAuthFailed covers both an unknown username and a wrong password
	ErrAuthFailed = errors.New("authentication failed")

	// ErrInvalidCredential is a violated password-change precondition
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrTokenRejected covers malformed, badly signed and expired tokens
	// as well as tokens whose subject no longer exists
	ErrTokenRejected = errors.New("token rejected")

	ErrNotAdmin = errors.New("admin privileges required")
)
