package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the OAuth2 token type reported to clients
const TokenType = "bearer"

// UserGetter resolves a token subject to a live user
type UserGetter interface {
	GetUser(ctx context.Context, username string) (model.User, error)
}

// Claims is the access token payload; the subject is the username
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService issues and verifies HS256 access tokens
type AuthService struct {
	users     UserGetter
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(users UserGetter, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// IssueToken creates a signed token for user valid for tokenTTL
func (a *AuthService) IssueToken(user model.User) (string, error) {
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks signature and expiry and loads the subject.
// Every token problem is ErrTokenRejected; a storage fault is not.
func (a *AuthService) VerifyToken(ctx context.Context, tokenString string) (model.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.jwtSecret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}
	if !token.Valid || claims.Subject == "" {
		return model.User{}, fmt.Errorf("%w: missing subject", ErrTokenRejected)
	}

	user, err := a.users.GetUser(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, fmt.Errorf("%w: unknown subject", ErrTokenRejected)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load token subject: %w", err)
	}

	return user, nil
}

// RequireAdmin fails for callers without the admin flag
func (a *AuthService) RequireAdmin(user model.User) error {
	if !user.Admin {
		return fmt.Errorf("%w: user %q", ErrNotAdmin, user.Username)
	}
	return nil
}
