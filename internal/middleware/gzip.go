package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// gzipBody decompresses a request body and closes the original with it
type gzipBody struct {
	body   io.ReadCloser
	reader *gzip.Reader
}

func newGzipBody(body io.ReadCloser) (*gzipBody, error) {
	reader, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzipBody{
		body:   body,
		reader: reader,
	}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.reader.Close(); err != nil {
		return err
	}
	return b.body.Close()
}

// compressible reports whether a response of contentType is worth compressing
func compressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/json", "text/html", "text/plain":
		return true
	default:
		return false
	}
}

// gzipResponseWriter decides on the first WriteHeader whether to compress.
// Redirects and empty responses pass through unchanged.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	h.Add("Vary", "Accept-Encoding")
	if statusCode >= http.StatusOK && statusCode != http.StatusNoContent &&
		(statusCode < 300 || statusCode >= 400) && compressible(h.Get("Content-Type")) {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		w.gz = gzipWriters.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.gz != nil {
		return w.gz.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	err := w.gz.Close()
	gzipWriters.Put(w.gz)
	w.gz = nil
	return err
}

// GzipMiddleware decodes gzip request bodies and compresses JSON and text
// responses for clients that accept gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					writeStatus(w, http.StatusBadRequest, "bad_input", "failed to decompress request body")
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close request body", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = body
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
