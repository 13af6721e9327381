package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/store"
)

var (
	ErrBadInput          = errors.New("bad input")
	ErrConflict          = errors.New("already exists")
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("service unavailable")
	ErrAuthFailed        = errors.New("incorrect username or password")
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrUnauthorized      = errors.New("not authorized")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrQuotaExceeded     = errors.New("url limit reached")

	ErrEmptyURL  = fmt.Errorf("%w: empty URL", ErrBadInput)
	ErrEmptyCode = fmt.Errorf("%w: empty short code", ErrBadInput)
)

// classify tags a lower-layer error with its usecase kind. Unavailable is
// checked first so an outage is never reported as a semantic outcome.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrInvalidField):
		return fmt.Errorf("%w: %w", ErrBadInput, err)
	case errors.Is(err, service.ErrAuthFailed):
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	case errors.Is(err, service.ErrInvalidCredential):
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	case errors.Is(err, service.ErrTokenRejected):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case errors.Is(err, service.ErrNotAdmin):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	default:
		return err
	}
}
