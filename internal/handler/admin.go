package handler

import (
	"net/http"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/go-chi/chi/v5"
)

// ListUsers handles GET /users/list_all_users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.currentUser(r)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	users, err := h.users.ListUsers(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, users)
}

// UpdateURLLimit handles POST /users/update_url_limit
func (h *Handler) UpdateURLLimit(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.currentUser(r)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	var request model.UpdateURLLimitRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	if err := h.users.UpdateURLLimit(r.Context(), caller, request.Username, *request.NewLimit); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, statusOK, "url limit updated")
}

// DeleteUser handles DELETE /users/{username}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.currentUser(r)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	if err := h.users.DeleteUser(r.Context(), caller, chi.URLParam(r, "username")); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, statusOK, "user deleted")
}
