package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Ping checks that the storage backend answers
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		h.logger.Error("storage is not configured")
		h.writeStatus(w, http.StatusInternalServerError, statusUnavailable, "storage is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		h.writeStatus(w, http.StatusInternalServerError, statusUnavailable, "service unavailable")
		return
	}

	h.writeStatus(w, http.StatusOK, statusOK, "pong")
}
