package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/wipetrack/erasure-api/internal/logger"
)

// AdminKeyMiddleware guards the operator surface with a static API key
// carried in the X-Admin-Key header.
func AdminKeyMiddleware(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				logger.Log.Errorw("admin surface disabled: no admin key configured")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
