package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/url-registry/internal/middleware"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase --output ../mocks --outpkg mocks --with-expecter

type URLUsecase interface {
	CreateShortURL(ctx context.Context, originalURL, customCode string, user *model.User) (model.ShortenResponse, error)
	GetOriginalURL(ctx context.Context, code string) (model.URL, error)
	ListURLs(ctx context.Context) ([]model.URLListItem, error)
	DeleteURL(ctx context.Context, code string, user model.User) error
}

//go:generate mockery --name UserUsecase --output ../mocks --outpkg mocks --with-expecter

type UserUsecase interface {
	Login(ctx context.Context, username, password string) (model.TokenResponse, error)
	Register(ctx context.Context, username, password string) (model.User, error)
	ChangePassword(ctx context.Context, caller model.User, oldPassword, newPassword string) error
	ListUsers(ctx context.Context, caller model.User) ([]model.UserSummary, error)
	UpdateURLLimit(ctx context.Context, caller model.User, username string, limit int) error
	DeleteUser(ctx context.Context, caller model.User, username string) error
}

//go:generate mockery --name Pinger --output ../mocks --outpkg mocks --with-expecter

// Pinger reports whether the storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	urls     URLUsecase
	users    UserUsecase
	logger   *zap.Logger
	db       Pinger
	validate *validator.Validate
}

func New(urls URLUsecase, users UserUsecase, logger *zap.Logger, db Pinger) *Handler {
	return &Handler{
		urls:     urls,
		users:    users,
		logger:   logger,
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Root answers GET / so that a bare deployment can be recognised
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, welcomeResponse{Message: "URL registry is running"})
}

type welcomeResponse struct {
	Message string `json:"message"`
}

// currentUser returns the user attached by the auth middleware
func (h *Handler) currentUser(r *http.Request) (model.User, bool) {
	return middleware.UserFromContext(r.Context())
}

// decodeJSON reads a JSON body into dst and validates it. On failure the
// 400 response is already written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		h.writeStatus(w, http.StatusBadRequest, statusBadInput, "malformed JSON body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.logger.Debug("request failed validation", zap.Error(err))
		h.writeStatus(w, http.StatusBadRequest, statusBadInput, err.Error())
		return false
	}

	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeStatus(w http.ResponseWriter, code int, status, message string) {
	h.writeJSON(w, code, model.Status{Status: status, Message: message})
}
