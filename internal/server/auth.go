package server

import (
	"crypto/subtle"
	"net/http"

	"call-retrieval-go/internal/logger"
)

// apiKeyAuth validates the X-API-Key header against the configured key using
// a constant-time compare. An empty configured key disables auth.
func apiKeyAuth(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-API-Key")
			if got == "" {
				logger.New().WithRequest(r).Warn("missing API key")
				writeError(w, http.StatusUnauthorized, "missing API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.New().WithRequest(r).Warn("invalid API key")
				writeError(w, http.StatusForbidden, "invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
