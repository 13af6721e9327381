package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// CredentialService stores users and checks their passwords
type CredentialService struct {
	repo         UserRepository
	cost         int
	defaultLimit int
	// dummyHash is compared against when the user does not exist so that
	// a lookup miss costs as much as a wrong password
	dummyHash []byte
}

// NewCredentialService creates the credential store. The bcrypt cost comes
// from the configuration and is fixed for the lifetime of the service.
func NewCredentialService(repo UserRepository, cfg *config.Config) (*CredentialService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credential service: %w", err)
	}

	return &CredentialService{
		repo:         repo,
		cost:         cfg.BcryptCost,
		defaultLimit: cfg.DefaultURLLimit,
		dummyHash:    dummy,
	}, nil
}

// HashPassword returns a salted bcrypt hash of plaintext
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash
func (s *CredentialService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// CreateUser inserts a new account. A negative urlLimit selects the default.
func (s *CredentialService) CreateUser(ctx context.Context, username, password string, admin bool, urlLimit int) (model.User, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	if urlLimit < 0 {
		urlLimit = s.defaultLimit
	}

	user := model.User{
		Username:       username,
		HashedPassword: hash,
		URLLimit:       urlLimit,
		Admin:          admin,
	}

	if err := s.repo.InsertUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to create user %q: %w", username, err)
	}

	return user, nil
}

// Authenticate returns the user when the password matches. An unknown
// user and a wrong password produce the same ErrAuthFailed.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return model.User{}, ErrAuthFailed
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to authenticate %q: %w", username, err)
	}

	if !s.VerifyPassword(password, user.HashedPassword) {
		return model.User{}, ErrAuthFailed
	}

	return user, nil
}

// ChangePassword replaces the hash when oldPassword verifies and differs
// from newPassword
func (s *CredentialService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if oldPassword == newPassword {
		return fmt.Errorf("%w: new password must differ from the old one", ErrInvalidCredential)
	}

	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to change password of %q: %w", username, err)
	}

	if !s.VerifyPassword(oldPassword, user.HashedPassword) {
		return fmt.Errorf("%w: old password does not match", ErrInvalidCredential)
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateUserField(ctx, username, model.FieldHashedPassword, hash); err != nil {
		return fmt.Errorf("failed to change password of %q: %w", username, err)
	}

	return nil
}

func (s *CredentialService) GetUser(ctx context.Context, username string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return user, nil
}

// ListUsers collects the whole users table
func (s *CredentialService) ListUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)

	for user, err := range s.repo.ScanUsers(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (s *CredentialService) UpdateURLLimit(ctx context.Context, username string, limit int) error {
	if err := s.repo.UpdateUserField(ctx, username, model.FieldURLLimit, limit); err != nil {
		return fmt.Errorf("failed to update url limit of %q: %w", username, err)
	}
	return nil
}

func (s *CredentialService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, err)
	}
	return nil
}

// EnsureAdmin creates an admin account unless the username is taken.
// An existing account is left as it is.
func (s *CredentialService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.CreateUser(ctx, username, password, true, -1)
	if errors.Is(err, store.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
