package repository

import (
	"context"
	"fmt"
	"iter"

	"github.com/avc-dev/url-registry/internal/model"
)

func (r *Repository) InsertUser(ctx context.Context, user model.User) error {
	if err := r.underlying.InsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, username string) (model.User, error) {
	user, err := r.underlying.GetUser(ctx, username)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *Repository) ScanUsers(ctx context.Context) iter.Seq2[model.User, error] {
	return wrapSeq(r.underlying.ScanUsers(ctx), func(err error) error {
		return fmt.Errorf("failed to scan users: %w", err)
	})
}

func (r *Repository) DeleteUser(ctx context.Context, username string) error {
	if err := r.underlying.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *Repository) UpdateUserField(ctx context.Context, username string, field model.UserField, value any) error {
	if err := r.underlying.UpdateUserField(ctx, username, field, value); err != nil {
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}
	return nil
}
