package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/service"
	"go.uber.org/zap"
)

type userContextKey struct{}

//go:generate mockery --name TokenVerifier --output ../mocks --outpkg mocks --with-expecter

// TokenVerifier resolves a bearer token to the user it was issued for
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (model.User, error)
	RequireAdmin(user model.User) error
}

// AuthMiddleware guards routes with bearer tokens
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid token
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := am.authenticate(w, r, true)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin is RequireAuth plus the admin flag. Non-admins get 401.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := am.authenticate(w, r, true)
		if !ok {
			return
		}
		if err := am.verifier.RequireAdmin(user); err != nil {
			am.logger.Debug("admin route refused", zap.String("username", user.Username))
			writeStatus(w, http.StatusUnauthorized, "unauthorized", "admin privileges required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// OptionalAuth lets anonymous requests through but still rejects a
// presented token that does not verify
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, ok := am.authenticate(w, r, false)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// authenticate writes the failure response itself and reports whether the
// request may proceed
func (am *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request, required bool) (model.User, bool) {
	token, ok := bearerToken(r)
	if !ok {
		if required {
			am.logger.Debug("missing bearer token", zap.String("uri", r.RequestURI))
		}
		unauthenticated(w, "not authenticated")
		return model.User{}, false
	}

	user, err := am.verifier.VerifyToken(r.Context(), token)
	if errors.Is(err, service.ErrTokenRejected) {
		am.logger.Debug("bearer token rejected", zap.Error(err))
		unauthenticated(w, "could not validate credentials")
		return model.User{}, false
	}
	if err != nil {
		am.logger.Error("failed to verify bearer token", zap.Error(err))
		writeStatus(w, http.StatusInternalServerError, "unavailable", "service unavailable")
		return model.User{}, false
	}

	return user, true
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeStatus(w, http.StatusUnauthorized, "unauthenticated", message)
}

func writeStatus(w http.ResponseWriter, code int, status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(model.Status{Status: status, Message: message})
}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by the auth middleware
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(model.User)
	return user, ok
}
