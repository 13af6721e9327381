package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/url-registry/internal/mocks"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	testUser  = model.User{Username: "alice", URLLimit: 20}
	testAdmin = model.User{Username: "root", URLLimit: 20, Admin: true}
)

// echoUser answers 200 with the username found in the context, or 204
func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(user.Username))
	})
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(v *mocks.MockTokenVerifier)
		wantCode   int
		wantBody   string
		wantHeader bool
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "good").Return(testUser, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "alice",
		},
		{
			name:   "lowercase scheme",
			header: "bearer good",
			setup: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "good").Return(testUser, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "alice",
		},
		{
			name:       "missing header",
			wantCode:   http.StatusUnauthorized,
			wantHeader: true,
		},
		{
			name:       "basic auth",
			header:     "Basic YWxpY2U6cHc=",
			wantCode:   http.StatusUnauthorized,
			wantHeader: true,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "expired").
					Return(model.User{}, fmt.Errorf("%w: token is expired", service.ErrTokenRejected)).Once()
			},
			wantCode:   http.StatusUnauthorized,
			wantHeader: true,
		},
		{
			name:   "store outage",
			header: "Bearer good",
			setup: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "good").
					Return(model.User{}, fmt.Errorf("failed to load token subject: %w", store.ErrUnavailable)).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			verifier := mocks.NewMockTokenVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}
			handler := NewAuthMiddleware(verifier, zap.NewNop()).RequireAuth(echoUser())

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantHeader {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		// Arrange
		verifier := mocks.NewMockTokenVerifier(t)
		verifier.EXPECT().VerifyToken(mock.Anything, "tok").Return(testAdmin, nil).Once()
		verifier.EXPECT().RequireAdmin(testAdmin).Return(nil).Once()

		handler := NewAuthMiddleware(verifier, zap.NewNop()).RequireAdmin(echoUser())
		req := httptest.NewRequest(http.MethodGet, "/users/list_all_users", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "root", rec.Body.String())
	})

	t.Run("regular user gets 401", func(t *testing.T) {
		// Arrange
		verifier := mocks.NewMockTokenVerifier(t)
		verifier.EXPECT().VerifyToken(mock.Anything, "tok").Return(testUser, nil).Once()
		verifier.EXPECT().RequireAdmin(testUser).Return(service.ErrNotAdmin).Once()

		handler := NewAuthMiddleware(verifier, zap.NewNop()).RequireAdmin(echoUser())
		req := httptest.NewRequest(http.MethodGet, "/users/list_all_users", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"status":"unauthorized","message":"admin privileges required"}`, rec.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous passes without user", func(t *testing.T) {
		verifier := mocks.NewMockTokenVerifier(t)
		handler := NewAuthMiddleware(verifier, zap.NewNop()).OptionalAuth(echoUser())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shorten_url", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		verifier := mocks.NewMockTokenVerifier(t)
		verifier.EXPECT().VerifyToken(mock.Anything, "tok").Return(testUser, nil).Once()
		handler := NewAuthMiddleware(verifier, zap.NewNop()).OptionalAuth(echoUser())

		req := httptest.NewRequest(http.MethodPost, "/shorten_url", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Body.String())
	})

	t.Run("presented bad token is rejected", func(t *testing.T) {
		verifier := mocks.NewMockTokenVerifier(t)
		verifier.EXPECT().VerifyToken(mock.Anything, "forged").Return(model.User{}, service.ErrTokenRejected).Once()
		handler := NewAuthMiddleware(verifier, zap.NewNop()).OptionalAuth(echoUser())

		req := httptest.NewRequest(http.MethodPost, "/shorten_url", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
