package usecase

import (
	"context"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name URLService --output ../mocks --outpkg mocks --with-expecter

// URLService is the URL registry
type URLService interface {
	CreateCustom(ctx context.Context, code model.Code, originalURL model.URL, owner string) (model.URLMapping, error)
	CreateRandom(ctx context.Context, originalURL model.URL, owner string) (model.URLMapping, error)
	Resolve(ctx context.Context, code model.Code) (model.URLMapping, error)
	ListAll(ctx context.Context) ([]model.URLMapping, error)
	Delete(ctx context.Context, code model.Code, authorize func(model.URLMapping) error) error
	CountOwned(ctx context.Context, owner string) (int, error)
}

//go:generate mockery --name CredentialService --output ../mocks --outpkg mocks --with-expecter

// CredentialService is the user store with password checks
type CredentialService interface {
	CreateUser(ctx context.Context, username, password string, admin bool, urlLimit int) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateURLLimit(ctx context.Context, username string, limit int) error
	DeleteUser(ctx context.Context, username string) error
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

//go:generate mockery --name TokenIssuer --output ../mocks --outpkg mocks --with-expecter

// TokenIssuer signs access tokens and checks roles
type TokenIssuer interface {
	IssueToken(user model.User) (string, error)
	RequireAdmin(user model.User) error
}

// URLUsecase validates HTTP input and applies the url policies
type URLUsecase struct {
	service URLService
	cfg     *config.Config
	logger  *zap.Logger
}

func NewURLUsecase(service URLService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// UserUsecase covers signup, login and account administration
type UserUsecase struct {
	credentials CredentialService
	tokens      TokenIssuer
	cfg         *config.Config
	logger      *zap.Logger
}

func NewUserUsecase(credentials CredentialService, tokens TokenIssuer, cfg *config.Config, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		credentials: credentials,
		tokens:      tokens,
		cfg:         cfg,
		logger:      logger,
	}
}

// logFailure logs outages loudly and semantic outcomes quietly
func logFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if isUnavailable(err) {
		logger.Error(msg, fields...)
		return
	}
	logger.Debug(msg, fields...)
}
