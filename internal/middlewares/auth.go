package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/jwt"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the authenticated identity in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Missing or invalid Authorization header"})
				return
			}

			claims, err := tokener.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or expired token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(setUserToContext(ctx, claims)))
		})
	}
}

// userKey is an unexported context key type for the authenticated user.
type userKey struct{}

// setUserToContext stores the authenticated identity in the context.
func setUserToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, userKey{}, claims)
}

// GetUserFromContext retrieves the authenticated identity from the context.
// Returns nil if the request did not pass the auth middleware.
func GetUserFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(userKey{}).(*jwt.Claims)
	return claims
}
