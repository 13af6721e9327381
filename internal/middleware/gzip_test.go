package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func gzipString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGzipMiddleware_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		status         int
		acceptEncoding string
		body           string
		wantCompressed bool
	}{
		{
			name:           "json response",
			contentType:    "application/json",
			status:         http.StatusCreated,
			acceptEncoding: "gzip",
			body:           `{"short_code":"promo","original_url":"https://example.com/sale"}`,
			wantCompressed: true,
		},
		{
			name:           "json with charset",
			contentType:    "application/json; charset=utf-8",
			status:         http.StatusOK,
			acceptEncoding: "gzip, deflate",
			body:           `[]`,
			wantCompressed: true,
		},
		{
			name:           "plain text",
			contentType:    "text/plain",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           "pong",
			wantCompressed: true,
		},
		{
			name:           "error status record",
			contentType:    "application/json",
			status:         http.StatusNotFound,
			acceptEncoding: "gzip",
			body:           `{"status":"not_found","message":"short code not found"}`,
			wantCompressed: true,
		},
		{
			name:           "client does not accept gzip",
			contentType:    "application/json",
			status:         http.StatusOK,
			body:           `{"message":"hi"}`,
			wantCompressed: false,
		},
		{
			name:           "binary content type",
			contentType:    "image/png",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           "not really a png",
			wantCompressed: false,
		},
		{
			name:           "redirect",
			contentType:    "text/html; charset=utf-8",
			status:         http.StatusSeeOther,
			acceptEncoding: "gzip",
			body:           `<a href="https://example.com/sale">See Other</a>.`,
			wantCompressed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			handler := GzipMiddleware(zaptest.NewLogger(t))(next)

			req := httptest.NewRequest(http.MethodGet, "/list_urls", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestGzipMiddleware_DecompressRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		gzipped     bool
		encoding    string
		wantStatus  int
		wantPayload string
	}{
		{
			name:        "gzip body",
			body:        `{"original_url":"https://example.com"}`,
			gzipped:     true,
			encoding:    "gzip",
			wantStatus:  http.StatusOK,
			wantPayload: `{"original_url":"https://example.com"}`,
		},
		{
			name:        "plain body",
			body:        `{"original_url":"https://example.com"}`,
			wantStatus:  http.StatusOK,
			wantPayload: `{"original_url":"https://example.com"}`,
		},
		{
			name:       "body claims gzip but is not",
			body:       "not gzip data",
			encoding:   "gzip",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var received string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				received = string(body)
				w.WriteHeader(http.StatusOK)
			})
			handler := GzipMiddleware(zaptest.NewLogger(t))(next)

			var body io.Reader = strings.NewReader(tt.body)
			if tt.gzipped {
				body = bytes.NewReader(gzipString(t, tt.body))
			}
			req := httptest.NewRequest(http.MethodPost, "/shorten_url", body)
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPayload, received)
		})
	}
}

func TestGzipMiddleware_BothDirections(t *testing.T) {
	// Arrange
	request := `{"original_url":"https://example.com/sale","custom_url":"promo"}`
	response := `{"short_code":"promo","original_url":"https://example.com/sale"}`

	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(response))
	})
	handler := GzipMiddleware(zaptest.NewLogger(t))(next)

	req := httptest.NewRequest(http.MethodPost, "/shorten_url", bytes.NewReader(gzipString(t, request)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, request, received)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, response, gunzip(t, rec.Body.Bytes()))
}

func TestCompressible(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"APPLICATION/JSON", true},
		{"text/html; charset=utf-8", true},
		{"text/plain", true},
		{"application/xml", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, compressible(tt.contentType))
		})
	}
}

func TestGzipMiddleware_LogsDecompressionError(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.ErrorLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})
	handler := GzipMiddleware(zap.New(core))(next)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"bad_input","message":"failed to decompress request body"}`, rec.Body.String())

	entries := logs.FilterMessage("Failed to decompress request body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}
