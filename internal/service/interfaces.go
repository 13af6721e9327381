package service

import (
	"context"
	"iter"

	"github.com/avc-dev/url-registry/internal/model"
)

//go:generate mockery --name URLRepository --output ../mocks --outpkg mocks --with-expecter

// URLRepository is the urls table as seen by the registry
type URLRepository interface {
	// InsertURL stores mapping only if its code is not taken yet
	InsertURL(ctx context.Context, mapping model.URLMapping) error
	GetURL(ctx context.Context, code model.Code) (model.URLMapping, error)
	ScanURLs(ctx context.Context) iter.Seq2[model.URLMapping, error]
	DeleteURL(ctx context.Context, code model.Code) error
	CountURLsByOwner(ctx context.Context, owner string) (int, error)
}

//go:generate mockery --name UserRepository --output ../mocks --outpkg mocks --with-expecter

// UserRepository is the users table as seen by the credential store
type UserRepository interface {
	InsertUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, username string) (model.User, error)
	ScanUsers(ctx context.Context) iter.Seq2[model.User, error]
	DeleteUser(ctx context.Context, username string) error
	UpdateUserField(ctx context.Context, username string, field model.UserField, value any) error
}

//go:generate mockery --name Generator --output ../mocks --outpkg mocks --with-expecter

// Generator produces short code candidates
type Generator interface {
	GenerateCode() model.Code
}
