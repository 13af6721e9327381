package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/url-registry/internal/middleware"
	"github.com/avc-dev/url-registry/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var (
	alice = model.User{Username: "alice", URLLimit: 20}
	admin = model.User{Username: "root", URLLimit: 20, Admin: true}
)

func withUser(req *http.Request, user model.User) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), user))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) model.Status {
	t.Helper()

	var status model.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	return status
}
