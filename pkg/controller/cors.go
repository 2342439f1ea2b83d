package controller

import (
	"net/http"
	"strings"
)

// Values advertised on every response. The API is token-authenticated, so
// origins are not restricted.
var (
	corsAllowedHeaders = []string{ //nolint: gochecknoglobals
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Authorization", "Accept", "Origin", "Cache-Control",
	}
	corsAllowedMethods = []string{ //nolint: gochecknoglobals
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodOptions,
	}
)

// WithCORS sets permissive CORS headers on every response and answers
// OPTIONS preflight requests with 204 No Content without invoking next.
func WithCORS(next http.Handler) http.Handler {
	headers := strings.Join(corsAllowedHeaders, ", ")
	methods := strings.Join(corsAllowedMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", headers)
		w.Header().Set("Access-Control-Allow-Methods", methods)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
