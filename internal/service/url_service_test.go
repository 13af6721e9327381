package service

import (
	"context"
	"fmt"
	"iter"
	"testing"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/mocks"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestURLService(t *testing.T, maxAttempts int) (*URLService, *mocks.MockURLRepository, *mocks.MockGenerator) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = maxAttempts

	repo := mocks.NewMockURLRepository(t)
	gen := mocks.NewMockGenerator(t)

	svc := NewURLService(repo, cfg)
	svc.codeGenerator = gen
	return svc, repo, gen
}

func TestCreateCustom(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "created"},
		{name: "taken", repoErr: store.ErrAlreadyExists, wantErr: store.ErrAlreadyExists},
		{name: "outage", repoErr: fmt.Errorf("%w: conn refused", store.ErrUnavailable), wantErr: store.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, repo, _ := newTestURLService(t, 50)
			expected := model.URLMapping{Code: "promo", OriginalURL: "https://example.com/sale", Owner: "alice"}
			repo.EXPECT().InsertURL(mock.Anything, expected).Return(tt.repoErr).Once()

			// Act
			mapping, err := svc.CreateCustom(context.Background(), "promo", "https://example.com/sale", "alice")

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, mapping)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected, mapping)
		})
	}
}

func TestCreateRandom_RetriesCollisions(t *testing.T) {
	// Arrange
	svc, repo, gen := newTestURLService(t, 50)

	gen.EXPECT().GenerateCode().Return("taken001").Once()
	gen.EXPECT().GenerateCode().Return("taken002").Once()
	gen.EXPECT().GenerateCode().Return("free0003").Once()

	repo.EXPECT().InsertURL(mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool {
		return m.Code != "free0003"
	})).Return(store.ErrAlreadyExists).Twice()
	repo.EXPECT().InsertURL(mock.Anything, model.URLMapping{Code: "free0003", OriginalURL: "https://example.com"}).
		Return(nil).Once()

	// Act
	mapping, err := svc.CreateRandom(context.Background(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("free0003"), mapping.Code)
}

func TestCreateRandom_ExhaustsAfterMaxAttempts(t *testing.T) {
	// Arrange
	const maxAttempts = 5
	svc, repo, gen := newTestURLService(t, maxAttempts)

	gen.EXPECT().GenerateCode().Return("always").Times(maxAttempts)
	repo.EXPECT().InsertURL(mock.Anything, mock.Anything).Return(store.ErrAlreadyExists).Times(maxAttempts)

	// Act
	_, err := svc.CreateRandom(context.Background(), "https://example.com", "")

	// Assert
	require.ErrorIs(t, err, ErrCodeSpaceExhausted)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
	assert.NotErrorIs(t, err, store.ErrUnavailable)
}

func TestCreateRandom_OutageStopsImmediately(t *testing.T) {
	// Arrange
	svc, repo, gen := newTestURLService(t, 50)

	gen.EXPECT().GenerateCode().Return("abcd1234").Once()
	repo.EXPECT().InsertURL(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: timeout", store.ErrUnavailable)).Once()

	// Act
	_, err := svc.CreateRandom(context.Background(), "https://example.com", "")

	// Assert
	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotErrorIs(t, err, ErrCodeSpaceExhausted)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		mapping model.URLMapping
		repoErr error
	}{
		{name: "found", mapping: model.URLMapping{Code: "promo", OriginalURL: "https://example.com/sale"}},
		{name: "missing", repoErr: store.ErrNotFound},
		{name: "outage", repoErr: store.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestURLService(t, 50)
			repo.EXPECT().GetURL(mock.Anything, model.Code("promo")).Return(tt.mapping, tt.repoErr).Once()

			mapping, err := svc.Resolve(context.Background(), "promo")

			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mapping, mapping)
		})
	}
}

func seqOf[T any](items []T, failAfter int, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i, item := range items {
			if failAfter >= 0 && i == failAfter {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func TestListAll(t *testing.T) {
	mappings := []model.URLMapping{
		{Code: "a", OriginalURL: "https://a.example"},
		{Code: "b", OriginalURL: "https://b.example"},
	}

	t.Run("full scan", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().ScanURLs(mock.Anything).Return(seqOf(mappings, -1, nil)).Once()

		got, err := svc.ListAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, mappings, got)
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().ScanURLs(mock.Anything).Return(seqOf[model.URLMapping](nil, -1, nil)).Once()

		got, err := svc.ListAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("outage mid-scan aborts", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().ScanURLs(mock.Anything).Return(seqOf(mappings, 1, store.ErrUnavailable)).Once()

		got, err := svc.ListAll(context.Background())

		require.ErrorIs(t, err, store.ErrUnavailable)
		assert.Nil(t, got)
	})
}

func TestDelete(t *testing.T) {
	mapping := model.URLMapping{Code: "promo", OriginalURL: "https://example.com/sale", Owner: "alice"}

	t.Run("authorized", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().GetURL(mock.Anything, model.Code("promo")).Return(mapping, nil).Once()
		repo.EXPECT().DeleteURL(mock.Anything, model.Code("promo")).Return(nil).Once()

		var seen model.URLMapping
		err := svc.Delete(context.Background(), "promo", func(m model.URLMapping) error {
			seen = m
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, mapping, seen)
	})

	t.Run("vetoed", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().GetURL(mock.Anything, model.Code("promo")).Return(mapping, nil).Once()

		err := svc.Delete(context.Background(), "promo", func(model.URLMapping) error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		repo.AssertNotCalled(t, "DeleteURL", mock.Anything, mock.Anything)
	})

	t.Run("concurrent deleter wins", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().GetURL(mock.Anything, model.Code("promo")).Return(mapping, nil).Once()
		repo.EXPECT().DeleteURL(mock.Anything, model.Code("promo")).Return(store.ErrNotFound).Once()

		err := svc.Delete(context.Background(), "promo", nil)

		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := newTestURLService(t, 50)
		repo.EXPECT().GetURL(mock.Anything, model.Code("promo")).Return(model.URLMapping{}, store.ErrNotFound).Once()

		err := svc.Delete(context.Background(), "promo", nil)

		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCountOwned(t *testing.T) {
	svc, repo, _ := newTestURLService(t, 50)
	repo.EXPECT().CountURLsByOwner(mock.Anything, "alice").Return(3, nil).Once()

	count, err := svc.CountOwned(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
