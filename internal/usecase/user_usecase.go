package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/service"
	"go.uber.org/zap"
)

// Login checks the credentials and issues a bearer token
func (u *UserUsecase) Login(ctx context.Context, username, password string) (model.TokenResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.TokenResponse{}, fmt.Errorf("%w: username and password are required", ErrBadInput)
	}
	if !storable(username) {
		return model.TokenResponse{}, fmt.Errorf("%w: username is not valid UTF-8 text", ErrBadInput)
	}

	user, err := u.credentials.Authenticate(ctx, username, password)
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "login failed", err, zap.String("username", username))
		return model.TokenResponse{}, err
	}

	token, err := u.tokens.IssueToken(user)
	if err != nil {
		u.logger.Error("failed to issue token", zap.String("username", username), zap.Error(err))
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token, TokenType: service.TokenType}, nil
}

// Register creates a regular account with the default url limit
func (u *UserUsecase) Register(ctx context.Context, username, password string) (model.User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return model.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return model.User{}, err
	}

	user, err := u.credentials.CreateUser(ctx, username, password, false, u.cfg.DefaultURLLimit)
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to register user", err, zap.String("username", username))
		return model.User{}, err
	}

	u.logger.Info("user registered", zap.String("username", username))
	return user, nil
}

// ChangePassword replaces the caller's password
func (u *UserUsecase) ChangePassword(ctx context.Context, caller model.User, oldPassword, newPassword string) error {
	if oldPassword == newPassword {
		return fmt.Errorf("%w: new password must differ from the old one", ErrInvalidCredential)
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	if err := u.credentials.ChangePassword(ctx, caller.Username, oldPassword, newPassword); err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to change password", err, zap.String("username", caller.Username))
		return err
	}

	u.logger.Info("password changed", zap.String("username", caller.Username))
	return nil
}

// ListUsers returns every account; admin only
func (u *UserUsecase) ListUsers(ctx context.Context, caller model.User) ([]model.UserSummary, error) {
	if err := u.requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := u.credentials.ListUsers(ctx)
	if err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to list users", err)
		return nil, err
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}
	return summaries, nil
}

// UpdateURLLimit sets how many mappings username may own; admin only
func (u *UserUsecase) UpdateURLLimit(ctx context.Context, caller model.User, username string, limit int) error {
	if err := u.requireAdmin(caller); err != nil {
		return err
	}
	if limit < 0 {
		return fmt.Errorf("%w: negative url limit", ErrBadInput)
	}
	if !storable(username) {
		return fmt.Errorf("%w: username is not valid UTF-8 text", ErrBadInput)
	}

	if err := u.credentials.UpdateURLLimit(ctx, username, limit); err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to update url limit", err, zap.String("username", username))
		return err
	}

	u.logger.Info("url limit updated",
		zap.String("username", username),
		zap.Int("limit", limit),
		zap.String("by", caller.Username),
	)
	return nil
}

// DeleteUser removes an account; admin only. Mappings the user created stay.
func (u *UserUsecase) DeleteUser(ctx context.Context, caller model.User, username string) error {
	if err := u.requireAdmin(caller); err != nil {
		return err
	}
	if username == "" || !storable(username) {
		return fmt.Errorf("%w: username must be non-empty UTF-8 text", ErrBadInput)
	}

	if err := u.credentials.DeleteUser(ctx, username); err != nil {
		err = classify(err)
		logFailure(u.logger, "failed to delete user", err, zap.String("username", username))
		return err
	}

	u.logger.Info("user deleted", zap.String("username", username), zap.String("by", caller.Username))
	return nil
}

// BootstrapAdmin creates the configured admin account when it is missing.
// It is a no-op when no admin username is configured.
func (u *UserUsecase) BootstrapAdmin(ctx context.Context) error {
	if u.cfg.AdminUsername == "" {
		return nil
	}

	created, err := u.credentials.EnsureAdmin(ctx, u.cfg.AdminUsername, u.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", classify(err))
	}

	if created {
		u.logger.Info("admin account created", zap.String("username", u.cfg.AdminUsername))
	}
	return nil
}

func (u *UserUsecase) requireAdmin(caller model.User) error {
	if err := u.tokens.RequireAdmin(caller); err != nil {
		return classify(err)
	}
	return nil
}
