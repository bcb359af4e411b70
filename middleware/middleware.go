package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"project-manager-service/logging"
	"project-manager-service/utils"

	"github.com/ulule/limiter/v3"
)

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"error": message})
}

// JWTAuthMiddleware odbija zahteve bez validnog Bearer tokena.
// Korisničko ime iz tokena se prosleđuje dalje kroz Username header.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		r.Header.Set("Username", claims.Username)
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware ograničava broj zahteva po autentifikovanom korisniku.
// Mora da stoji iza JWTAuthMiddleware da bi Username header bio postavljen.
func RateLimitMiddleware(lim *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Username")
			if key == "" {
				key = r.RemoteAddr
			}

			lctx, err := lim.Get(r.Context(), key)
			if err != nil {
				logging.Logger.Errorf("Event ID: RATE_LIMIT_ERROR, Description: Rate limiter failure for %s: %v", key, err)
				writeAuthError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if lctx.Reached {
				logging.Logger.Warnf("Event ID: RATE_LIMIT_REACHED, Description: User %s exceeded the request limit", key)
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
