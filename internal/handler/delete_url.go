package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteURL handles DELETE /delete_url/{code}
func (h *Handler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		h.logger.Error("user not found in context")
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
		return
	}

	if err := h.urls.DeleteURL(r.Context(), chi.URLParam(r, "code"), user); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, statusOK, "short code deleted")
}
