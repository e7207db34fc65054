package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/voicerouter/errors"
)

// Middleware decorates the server's root handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws so that mws[0] sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range mws {
			h = mws[len(mws)-1-i](h)
		}
		return h
	}
}

// writeError renders se as the JSON error envelope the endpoints use.
func writeError(w http.ResponseWriter, status int, se *errors.StandardError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(se.ToResponse())
}
