package middleware

import (
	"net/http"
	"strings"
)

// originAllowed permits any HTTPS origin plus localhost over HTTP for
// local frontend development.
func originAllowed(origin string) bool {
	if strings.HasPrefix(origin, "https://") {
		return true
	}
	return strings.HasPrefix(origin, "http://localhost")
}

// CORS sets cross-origin headers for browser clients and answers
// preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
