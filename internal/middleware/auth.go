package middleware

import (
	"net/http"
	"strings"

	"github.com/sanketsmane/portfolio-api/internal/ctxkeys"
	"github.com/sanketsmane/portfolio-api/internal/service"
)

// RequireAdmin verifies the Bearer token and adds the admin to the
// request context. Requests without a valid token get a JSON 401.
func RequireAdmin(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			admin, err := authService.VerifyToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithAdmin(r.Context(), admin)))
		}
	}
}
