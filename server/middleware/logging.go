package middleware

import (
	"net/http"
	"time"

	"github.com/kbukum/voicerouter/logger"
)

// RequestLogger logs each request's method, path, status, response size
// and duration. The health endpoint is skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)
			status := rec.Status()

			fields := map[string]any{
				logger.FieldMethod:   r.Method,
				logger.FieldPath:     r.URL.Path,
				logger.FieldHTTPCode: status,
				logger.FieldBytes:    rec.bytes,
				logger.FieldDuration: time.Since(start).Milliseconds(),
			}
			if id := r.Header.Get(HeaderRequestID); id != "" {
				fields[logger.FieldRequestID] = id
			}

			switch {
			case status >= 500:
				log.Error("request completed", fields)
			case status >= 400:
				log.Warn("request completed", fields)
			default:
				log.Debug("request completed", fields)
			}
		})
	}
}
