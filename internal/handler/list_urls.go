package handler

import "net/http"

// ListURLs handles GET /list_urls
func (h *Handler) ListURLs(w http.ResponseWriter, r *http.Request) {
	items, err := h.urls.ListURLs(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, items)
}
