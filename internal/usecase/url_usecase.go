package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/url-registry/internal/model"
	"go.uber.org/zap"
)

// CreateShortURL creates a mapping for originalURL. A non-empty customCode is
// stored as is; otherwise a random code is allocated. user is nil for
// anonymous callers, who are not subject to the quota.
func (u *URLUsecase) CreateShortURL(ctx context.Context, originalURL, customCode string, user *model.User) (model.ShortenResponse, error) {
	target := cleanURL(originalURL)
	if target == "" {
		return model.ShortenResponse{}, ErrEmptyURL
	}
	if !storable(target) {
		return model.ShortenResponse{}, fmt.Errorf("%w: original URL is not valid UTF-8 text", ErrBadInput)
	}

	code := strings.TrimSpace(customCode)
	if code != "" {
		if err := validateCode(code); err != nil {
			return model.ShortenResponse{}, err
		}
	}

	owner := ""
	if user != nil {
		owner = user.Username
		if err := u.checkQuota(ctx, *user); err != nil {
			return model.ShortenResponse{}, err
		}
	}

	var (
		mapping model.URLMapping
		err     error
	)
	if code != "" {
		mapping, err = u.service.CreateCustom(ctx, model.Code(code), model.URL(target), owner)
	} else {
		mapping, err = u.service.CreateRandom(ctx, model.URL(target), owner)
	}
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to create short url", err,
			zap.String("code", code), zap.String("owner", owner))
		return model.ShortenResponse{}, err
	}

	shortURL, err := u.shortURL(mapping.Code)
	if err != nil {
		return model.ShortenResponse{}, err
	}

	u.logger.Info("short url created",
		zap.String("code", mapping.Code.String()),
		zap.String("owner", owner),
	)

	return model.ShortenResponse{
		ShortCode:   mapping.Code.String(),
		OriginalURL: mapping.OriginalURL.String(),
		ShortURL:    shortURL,
	}, nil
}

// checkQuota refuses a new mapping once the user owns URLLimit of them.
// Admins are not limited. Count and insert are separate calls, so two
// concurrent requests may both pass the check.
func (u *URLUsecase) checkQuota(ctx context.Context, user model.User) error {
	if user.Admin {
		return nil
	}

	owned, err := u.service.CountOwned(ctx, user.Username)
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to count owned urls", err, zap.String("username", user.Username))
		return err
	}

	if owned >= user.URLLimit {
		return fmt.Errorf("%w: %d of %d", ErrQuotaExceeded, owned, user.URLLimit)
	}
	return nil
}

func (u *URLUsecase) shortURL(code model.Code) (string, error) {
	shortURL, err := u.cfg.BaseURL.ShortURL(code.String())
	if err != nil {
		return "", fmt.Errorf("failed to build short url: %w", err)
	}
	return shortURL, nil
}

// GetOriginalURL resolves a code to its target URL
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (model.URL, error) {
	if err := validateCode(code); err != nil {
		return "", err
	}

	mapping, err := u.service.Resolve(ctx, model.Code(code))
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to resolve short url", err, zap.String("code", code))
		return "", err
	}

	return mapping.OriginalURL, nil
}

// ListURLs returns every live mapping
func (u *URLUsecase) ListURLs(ctx context.Context) ([]model.URLListItem, error) {
	mappings, err := u.service.ListAll(ctx)
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to list urls", err)
		return nil, err
	}

	items := make([]model.URLListItem, 0, len(mappings))
	for _, m := range mappings {
		items = append(items, model.URLListItem{
			ShortCode:   m.Code.String(),
			OriginalURL: m.OriginalURL.String(),
		})
	}

	return items, nil
}

// DeleteURL removes a mapping owned by user. Admins may delete any mapping;
// anonymous mappings can only be deleted by an admin.
func (u *URLUsecase) DeleteURL(ctx context.Context, code string, user model.User) error {
	if err := validateCode(code); err != nil {
		return err
	}

	authorize := func(m model.URLMapping) error {
		if user.Admin || (m.Owner != "" && m.Owner == user.Username) {
			return nil
		}
		return fmt.Errorf("%w: %q does not own %q", ErrUnauthorized, user.Username, m.Code)
	}

	if err := u.service.Delete(ctx, model.Code(code), authorize); err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to delete short url", err,
			zap.String("code", code), zap.String("username", user.Username))
		return err
	}

	u.logger.Info("short url deleted", zap.String("code", code), zap.String("username", user.Username))
	return nil
}
