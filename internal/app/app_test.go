package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/mocks"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			dbPool: mockDB,
		}

		// Act
		app.Close()
	})

	t.Run("database pool is nil", func(t *testing.T) {
		app := &App{
			logger: zap.NewNop(),
			dbPool: nil,
		}

		// Act - should not panic
		app.Close()
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.BcryptCost = 4
	cfg.AdminUsername = "root"
	cfg.AdminPassword = "rootpass"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestNewWithConfig_FileStorage(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	cfg.FileStoragePath = t.TempDir() + "/registry.json"

	// Act
	app, err := NewWithConfig(context.Background(), cfg, zap.NewNop())

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, app.Handler())
	assert.Nil(t, app.dbPool)
	assert.FileExists(t, cfg.FileStoragePath, "bootstrapped admin is persisted")
}

func TestNewWithConfig_BadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	_, err := NewWithConfig(context.Background(), cfg, zap.NewNop())

	assert.Error(t, err)
}

func noRedirects() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	})
}
