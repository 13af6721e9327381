package usecase

import (
	"context"
	"testing"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/repository"
	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	cfg   *config.Config
	repo  *repository.Repository
	urls  *URLUsecase
	users *UserUsecase
	auth  *service.AuthService
}

func newTestConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

// newTestEnv wires the usecases over an in-memory store
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	repo := repository.New(store.NewStore())

	credentials, err := service.NewCredentialService(repo, cfg)
	require.NoError(t, err)
	auth := service.NewAuthService(repo, cfg.JWTSecret, cfg.TokenTTL)

	return &testEnv{
		cfg:   cfg,
		repo:  repo,
		urls:  NewURLUsecase(service.NewURLService(repo, cfg), cfg, zap.NewNop()),
		users: NewUserUsecase(credentials, auth, cfg, zap.NewNop()),
		auth:  auth,
	}
}

func (e *testEnv) register(t *testing.T, username, password string) model.User {
	t.Helper()

	user, err := e.users.Register(context.Background(), username, password)
	require.NoError(t, err)
	return user
}
