package handler

import (
	"net/http"

	"github.com/avc-dev/url-registry/internal/model"
	"go.uber.org/zap"
)

// ShortenURL handles POST /shorten_url. The bearer token is optional; when
// present the caller becomes the owner of the mapping.
func (h *Handler) ShortenURL(w http.ResponseWriter, r *http.Request) {
	var request model.ShortenRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	var owner *model.User
	if user, ok := h.currentUser(r); ok {
		owner = &user
	}

	response, err := h.urls.CreateShortURL(r.Context(), request.OriginalURL, request.CustomURL, owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Debug("mapping created", zap.String("code", response.ShortCode))
	h.writeJSON(w, http.StatusCreated, response)
}
