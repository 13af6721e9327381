package handler

import (
	"net/http"

	"github.com/avc-dev/url-registry/internal/model"
	"go.uber.org/zap"
)

// Token handles POST /users/token, the OAuth2 password grant form
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("failed to parse form", zap.Error(err))
		h.writeStatus(w, http.StatusBadRequest, statusBadInput, "malformed form body")
		return
	}

	token, err := h.users.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, token)
}

// CreateUser handles POST /users/create_user
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("failed to parse form", zap.Error(err))
		h.writeStatus(w, http.StatusBadRequest, statusBadInput, "malformed form body")
		return
	}

	user, err := h.users.Register(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, model.CreateUserResponse{Username: user.Username})
}

// Me handles GET /users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	h.writeJSON(w, http.StatusOK, user.Summary())
}

// ChangePassword handles POST /users/change_password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	var request model.ChangePasswordRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	if err := h.users.ChangePassword(r.Context(), user, request.OldPassword, request.NewPassword); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, statusOK, "password changed")
}
