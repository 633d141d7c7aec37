package middleware

import (
	"context"
	"net/http"

	"dsatrack/internal/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth verifies the bearer token on the request and injects the
// authenticated user id into the request context. Handlers behind it
// can assume UserID always succeeds.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
				return
			}

			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated user id set by Auth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
