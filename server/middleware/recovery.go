package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/logger"
)

// Recovery converts handler panics into a 500 carrying an UNKNOWN_ERROR
// envelope and logs the stack.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithContext(r.Context()).Error("panic recovered", map[string]any{
						logger.FieldError:  fmt.Sprintf("%v", rec),
						"stack":            string(debug.Stack()),
						logger.FieldPath:   r.URL.Path,
						logger.FieldMethod: r.Method,
					})
					writeError(w, http.StatusInternalServerError,
						errors.New(errors.ErrCodeUnknown, "Internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
