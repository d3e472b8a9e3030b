package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bloggydev/bloggy/internal/logging"
	"github.com/bloggydev/bloggy/internal/token"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth verifies the bearer token on protected routes and exposes the
// authenticated user id through the request context.
func Auth(issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logging.FromContext(r.Context()).With("middleware", "auth")

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeUnauthorized(w, "invalid authorization header")
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				l.Warn("token rejected", "error", err)
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			userID, err := claims.ParseUserID()
			if err != nil {
				l.Warn("token rejected", "error", err)
				writeUnauthorized(w, "invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user id set by Auth.
func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
