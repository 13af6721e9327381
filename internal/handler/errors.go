package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/usecase"
	"go.uber.org/zap"
)

const (
	statusOK                = "ok"
	statusBadInput          = "bad_input"
	statusConflict          = "conflict"
	statusNotFound          = "not_found"
	statusUnavailable       = "unavailable"
	statusAuthFailed        = "auth_failed"
	statusUnauthenticated   = "unauthenticated"
	statusUnauthorized      = "unauthorized"
	statusInvalidCredential = "invalid_credential"
	statusQuotaExceeded     = "quota_exceeded"
	statusInternal          = "internal_error"
)

// handleError maps usecase errors to HTTP responses. Unavailable is matched
// first so an outage never looks like a missing record.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnavailable):
		h.logger.Error("storage unavailable", zap.Error(err))
		h.writeStatus(w, http.StatusInternalServerError, statusUnavailable, "service unavailable")
	case errors.Is(err, usecase.ErrBadInput):
		h.writeStatus(w, http.StatusBadRequest, statusBadInput, err.Error())
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		h.writeStatus(w, http.StatusConflict, statusConflict, "could not allocate a unique short code, try again")
	case errors.Is(err, usecase.ErrConflict):
		h.writeStatus(w, http.StatusConflict, statusConflict, "already exists")
	case errors.Is(err, usecase.ErrNotFound):
		h.writeStatus(w, http.StatusNotFound, statusNotFound, "not found")
	case errors.Is(err, usecase.ErrAuthFailed):
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.writeStatus(w, http.StatusUnauthorized, statusAuthFailed, "incorrect username or password")
	case errors.Is(err, usecase.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "not authenticated")
	case errors.Is(err, usecase.ErrUnauthorized):
		h.writeStatus(w, http.StatusUnauthorized, statusUnauthorized, "not authorized")
	case errors.Is(err, usecase.ErrInvalidCredential):
		h.writeStatus(w, http.StatusBadRequest, statusInvalidCredential, "old password is wrong or equals the new one")
	case errors.Is(err, usecase.ErrQuotaExceeded):
		h.writeStatus(w, http.StatusForbidden, statusQuotaExceeded, "url limit reached")
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		h.writeStatus(w, http.StatusInternalServerError, statusInternal, "internal server error")
	}
}
