package repository

import (
	"context"
	"fmt"
	"iter"

	"github.com/avc-dev/url-registry/internal/model"
)

func (r *Repository) InsertURL(ctx context.Context, mapping model.URLMapping) error {
	if err := r.underlying.InsertURL(ctx, mapping); err != nil {
		return fmt.Errorf("failed to insert url: %w", err)
	}
	return nil
}

func (r *Repository) GetURL(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := r.underlying.GetURL(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get url: %w", err)
	}
	return mapping, nil
}

func (r *Repository) ScanURLs(ctx context.Context) iter.Seq2[model.URLMapping, error] {
	return wrapSeq(r.underlying.ScanURLs(ctx), func(err error) error {
		return fmt.Errorf("failed to scan urls: %w", err)
	})
}

func (r *Repository) DeleteURL(ctx context.Context, code model.Code) error {
	if err := r.underlying.DeleteURL(ctx, code); err != nil {
		return fmt.Errorf("failed to delete url: %w", err)
	}
	return nil
}

func (r *Repository) CountURLsByOwner(ctx context.Context, owner string) (int, error) {
	count, err := r.underlying.CountURLsByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to count urls: %w", err)
	}
	return count, nil
}
