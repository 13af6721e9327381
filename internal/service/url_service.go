package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/store"
)

// URLService is the URL registry. It keeps no state of its own: the
// store's conditional insert is what guarantees one live mapping per code.
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	maxAttempts   int
}

// NewURLService builds the registry with the default code generator
func NewURLService(repo URLRepository, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(cfg.CodeLength),
		maxAttempts:   cfg.Retry.MaxAttempts,
	}
}

// SetGenerator replaces the code generator used by CreateRandom
func (s *URLService) SetGenerator(g Generator) {
	s.codeGenerator = g
}

// CreateCustom stores a caller-chosen code. A collision is final and is
// never retried; the existing mapping is left untouched.
func (s *URLService) CreateCustom(ctx context.Context, code model.Code, originalURL model.URL, owner string) (model.URLMapping, error) {
	mapping := model.URLMapping{
		Code:        code,
		OriginalURL: originalURL,
		Owner:       owner,
	}

	if err := s.repo.InsertURL(ctx, mapping); err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to create custom code %q: %w", code, err)
	}

	return mapping, nil
}

// CreateRandom allocates a generated code, retrying collisions up to
// maxAttempts times. Any other failure ends the loop at once.
func (s *URLService) CreateRandom(ctx context.Context, originalURL model.URL, owner string) (model.URLMapping, error) {
	var lastErr error

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		mapping := model.URLMapping{
			Code:        s.codeGenerator.GenerateCode(),
			OriginalURL: originalURL,
			Owner:       owner,
		}

		err := s.repo.InsertURL(ctx, mapping)
		if err == nil {
			return mapping, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return model.URLMapping{}, fmt.Errorf("failed to create random code on attempt %d: %w", attempt+1, err)
		}

		lastErr = err
	}

	return model.URLMapping{}, fmt.Errorf("failed to generate unique code after %d attempts: %w: %w",
		s.maxAttempts, ErrCodeSpaceExhausted, lastErr)
}

// Resolve looks a code up. Not-found and unavailable stay distinct.
func (s *URLService) Resolve(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := s.repo.GetURL(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to resolve code %q: %w", code, err)
	}

	return mapping, nil
}

// ListAll collects the whole table; a failure mid-scan discards what was read
func (s *URLService) ListAll(ctx context.Context) ([]model.URLMapping, error) {
	mappings := make([]model.URLMapping, 0)

	for mapping, err := range s.repo.ScanURLs(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list urls: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	return mappings, nil
}

// Delete removes a mapping. authorize, when set, sees the current record
// first and can veto the deletion. If another deleter wins between the
// read and the delete the result is store.ErrNotFound.
func (s *URLService) Delete(ctx context.Context, code model.Code, authorize func(model.URLMapping) error) error {
	mapping, err := s.repo.GetURL(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to delete code %q: %w", code, err)
	}

	if authorize != nil {
		if err := authorize(mapping); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteURL(ctx, code); err != nil {
		return fmt.Errorf("failed to delete code %q: %w", code, err)
	}

	return nil
}

// CountOwned returns how many mappings owner has created
func (s *URLService) CountOwned(ctx context.Context, owner string) (int, error) {
	count, err := s.repo.CountURLsByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to count urls of %q: %w", owner, err)
	}

	return count, nil
}
