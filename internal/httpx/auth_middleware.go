package httpx

import (
	"net/http"
	"strings"

	"bookduck/internal/auth"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token subject as the acting user.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing bearer token", nil)
				return
			}

			claims, err := auth.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil || claims.Sub == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or expired token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), claims.Sub)))
		})
	}
}
