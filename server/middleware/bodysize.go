package middleware

import (
	"fmt"
	"net/http"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/util"
)

// DefaultMaxBodySize bounds provider payloads when no limit is configured.
const DefaultMaxBodySize int64 = 10 << 20

// BodySizeLimit caps request bodies at maxSize ("10MB", "512KB", ...).
// Requests declaring a larger Content-Length get 413 with an INVALID_INPUT
// envelope; undeclared bodies fail on read once they cross the limit.
func BodySizeLimit(maxSize string) Middleware {
	limit := util.ParseSize(maxSize, DefaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, http.StatusRequestEntityTooLarge, errors.NewInvalidInput(
					fmt.Sprintf("request body of %d bytes exceeds the %d byte limit", r.ContentLength, limit)))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
