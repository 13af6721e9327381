package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStore checks that a new store starts empty
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.Empty(t, store.urls)
	assert.Empty(t, store.users)
}

func TestStore_InsertURL_Success(t *testing.T) {
	tests := []struct {
		name    string
		mapping model.URLMapping
	}{
		{
			name:    "Simple write",
			mapping: model.URLMapping{Code: "abc12345", OriginalURL: "https://example.com"},
		},
		{
			name:    "Write with query params",
			mapping: model.URLMapping{Code: "qwerty12", OriginalURL: "https://example.com?param=value&other=test"},
		},
		{
			name:    "Single character code",
			mapping: model.URLMapping{Code: "a", OriginalURL: "https://example.com"},
		},
		{
			name:    "Owned mapping",
			mapping: model.URLMapping{Code: "owned", OriginalURL: "https://example.com", Owner: "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()

			// Act
			err := store.InsertURL(context.Background(), tt.mapping)

			// Assert
			require.NoError(t, err)
			value, exists := store.urls[tt.mapping.Code]
			assert.True(t, exists, "Expected key to exist in store")
			assert.Equal(t, tt.mapping, value)
		})
	}
}

// TestStore_InsertURL_Duplicate checks that a second insert never overwrites the first
func TestStore_InsertURL_Duplicate(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	first := model.URLMapping{Code: "promo", OriginalURL: "https://example.com/first"}
	second := model.URLMapping{Code: "promo", OriginalURL: "https://example.com/second"}
	require.NoError(t, store.InsertURL(ctx, first))

	// Act
	err := store.InsertURL(ctx, second)

	// Assert
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrUnavailable)
	got, err := store.GetURL(ctx, "promo")
	require.NoError(t, err)
	assert.Equal(t, first.OriginalURL, got.OriginalURL)
}

func TestStore_GetURL_NotFound(t *testing.T) {
	// Arrange
	store := NewStore()

	// Act
	_, err := store.GetURL(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

// TestStore_InsertURL_Concurrent checks that exactly one racer wins a key
func TestStore_InsertURL_Concurrent(t *testing.T) {
	// Arrange
	store := NewStore()
	const racers = 64
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	// Act
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.InsertURL(context.Background(), model.URLMapping{Code: "race", OriginalURL: "https://example.com"})
			switch {
			case err == nil:
				created.Add(1)
			case assert.ErrorIs(t, err, ErrAlreadyExists):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(racers-1), conflicts.Load())
}

func TestStore_ScanURLs(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	for _, code := range []model.Code{"c", "a", "b"} {
		require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: code, OriginalURL: "https://example.com/" + model.URL(code)}))
	}

	// Act
	var codes []model.Code
	for m, err := range store.ScanURLs(ctx) {
		require.NoError(t, err)
		codes = append(codes, m.Code)
	}

	// Assert
	assert.Equal(t, []model.Code{"a", "b", "c"}, codes)
}

func TestStore_ScanURLs_EarlyStop(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	for _, code := range []model.Code{"a", "b", "c"} {
		require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: code, OriginalURL: "https://example.com"}))
	}

	// Act
	seen := 0
	for range store.ScanURLs(ctx) {
		seen++
		break
	}

	// Assert
	assert.Equal(t, 1, seen)
}

func TestStore_DeleteURL(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: "gone", OriginalURL: "https://example.com"}))

	// Act
	err := store.DeleteURL(ctx, "gone")
	second := store.DeleteURL(ctx, "gone")

	// Assert
	require.NoError(t, err)
	assert.ErrorIs(t, second, ErrNotFound)
	_, err = store.GetURL(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CountURLsByOwner(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: "a1", OriginalURL: "https://a", Owner: "alice"}))
	require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: "a2", OriginalURL: "https://a", Owner: "alice"}))
	require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: "b1", OriginalURL: "https://b", Owner: "bob"}))
	require.NoError(t, store.InsertURL(ctx, model.URLMapping{Code: "anon", OriginalURL: "https://c"}))

	// Act
	alice, err := store.CountURLsByOwner(ctx, "alice")
	require.NoError(t, err)
	carol, err := store.CountURLsByOwner(ctx, "carol")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, alice)
	assert.Equal(t, 0, carol)
}

func TestStore_Users(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	user := model.User{Username: "alice", HashedPassword: "hash", URLLimit: 20}

	// Act & Assert
	require.NoError(t, store.InsertUser(ctx, user))
	assert.ErrorIs(t, store.InsertUser(ctx, user), ErrAlreadyExists)

	got, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = store.GetUser(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.DeleteUser(ctx, "alice"))
	assert.ErrorIs(t, store.DeleteUser(ctx, "alice"), ErrNotFound)
}

func TestStore_UpdateUserField(t *testing.T) {
	tests := []struct {
		name    string
		field   model.UserField
		value   any
		wantErr error
		check   func(t *testing.T, u model.User)
	}{
		{
			name:  "password hash",
			field: model.FieldHashedPassword,
			value: "new-hash",
			check: func(t *testing.T, u model.User) { assert.Equal(t, "new-hash", u.HashedPassword) },
		},
		{
			name:  "url limit",
			field: model.FieldURLLimit,
			value: 5,
			check: func(t *testing.T, u model.User) { assert.Equal(t, 5, u.URLLimit) },
		},
		{
			name:  "admin flag",
			field: model.FieldAdmin,
			value: true,
			check: func(t *testing.T, u model.User) { assert.True(t, u.Admin) },
		},
		{
			name:    "wrong type",
			field:   model.FieldURLLimit,
			value:   "five",
			wantErr: ErrInvalidField,
		},
		{
			name:    "negative limit",
			field:   model.FieldURLLimit,
			value:   -1,
			wantErr: ErrInvalidField,
		},
		{
			name:    "unknown field",
			field:   model.UserField("username"),
			value:   "mallory",
			wantErr: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()
			ctx := context.Background()
			require.NoError(t, store.InsertUser(ctx, model.User{Username: "alice", HashedPassword: "hash", URLLimit: 20}))

			// Act
			err := store.UpdateUserField(ctx, "alice", tt.field, tt.value)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				got, _ := store.GetUser(ctx, "alice")
				assert.Equal(t, model.User{Username: "alice", HashedPassword: "hash", URLLimit: 20}, got)
				return
			}
			require.NoError(t, err)
			got, err := store.GetUser(ctx, "alice")
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestStore_UpdateUserField_NotFound(t *testing.T) {
	store := NewStore()

	err := store.UpdateUserField(context.Background(), "ghost", model.FieldAdmin, true)

	assert.ErrorIs(t, err, ErrNotFound)
}
