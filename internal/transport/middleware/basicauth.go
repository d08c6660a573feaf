package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ndevr/contentseer/internal/config"
)

// BasicAuth returns middleware that authenticates requests with HTTP Basic
// auth against the configured key:secret pair. Comparison is constant-time.
func BasicAuth(cfg config.APIConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, secret, ok := r.BasicAuth()
			if !ok || !credentialsMatch(key, secret, cfg) {
				w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func credentialsMatch(key, secret string, cfg config.APIConfig) bool {
	keyOK := subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Key)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.Secret)) == 1
	return keyOK && secretOK
}
