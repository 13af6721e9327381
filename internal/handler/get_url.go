package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect handles GET /redirect/{code} with a 303 to the original URL.
// Location carries the stored value verbatim; http.Redirect would resolve
// a scheme-less target against the request path.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	originalURL, err := h.urls.GetOriginalURL(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Location", originalURL.String())
	w.WriteHeader(http.StatusSeeOther)
}
