package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"go.uber.org/zap"
)

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WithGzip transparently decompresses gzip request bodies and compresses
// responses for clients that accept it.
func WithGzip() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, "invalid gzip", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := gz.Close(); err != nil {
						logger.Log.Error("failed to close gzip reader", zap.Error(err))
					}
				}()
				r.Body = io.NopCloser(gz)
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			defer func() {
				if err := gz.Close(); err != nil {
					logger.Log.Error("failed to close gzip writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gzipResponseWriter{Writer: gz, ResponseWriter: w}, r)
		})
	}
}
