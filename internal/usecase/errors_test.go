package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "conflict", err: store.ErrAlreadyExists, want: ErrConflict},
		{name: "not found", err: store.ErrNotFound, want: ErrNotFound},
		{name: "invalid field", err: store.ErrInvalidField, want: ErrBadInput},
		{name: "auth failed", err: service.ErrAuthFailed, want: ErrAuthFailed},
		{name: "invalid credential", err: service.ErrInvalidCredential, want: ErrInvalidCredential},
		{name: "token rejected", err: service.ErrTokenRejected, want: ErrUnauthenticated},
		{name: "not admin", err: service.ErrNotAdmin, want: ErrUnauthorized},
		{
			name: "unavailable wins over not found",
			err:  fmt.Errorf("%w: %w", store.ErrNotFound, store.ErrUnavailable),
			want: ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(fmt.Errorf("wrapped: %w", tt.err))

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
		})
	}

	assert.NoError(t, classify(nil))

	other := errors.New("other")
	assert.Same(t, other, classify(other))
}
