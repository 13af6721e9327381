package repository

import (
	"context"
	"iter"

	"github.com/avc-dev/url-registry/internal/model"
)

// Store is the persistence adapter contract over the urls and users tables.
// Implementations return store.ErrAlreadyExists, store.ErrNotFound and
// store.ErrUnavailable so callers can always tell them apart.
type Store interface {
	InsertURL(ctx context.Context, mapping model.URLMapping) error
	GetURL(ctx context.Context, code model.Code) (model.URLMapping, error)
	ScanURLs(ctx context.Context) iter.Seq2[model.URLMapping, error]
	DeleteURL(ctx context.Context, code model.Code) error
	CountURLsByOwner(ctx context.Context, owner string) (int, error)

	InsertUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, username string) (model.User, error)
	ScanUsers(ctx context.Context) iter.Seq2[model.User, error]
	DeleteUser(ctx context.Context, username string) error
	UpdateUserField(ctx context.Context, username string, field model.UserField, value any) error

	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}

// wrapSeq adds context to every error a scan yields
func wrapSeq[T any](seq iter.Seq2[T, error], wrap func(error) error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range seq {
			if err != nil {
				yield(v, wrap(err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
