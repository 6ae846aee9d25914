package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"genmoney/internal/model"
	"genmoney/internal/repository"
	"genmoney/internal/token"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// UserFromContext returns the authenticated user stored by Auth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(UserContextKey).(*model.User)
	return u, ok
}

// Auth resolves the bearer token into a user record and stores it in the
// request context. Invalid, expired, or missing tokens fail with 401, as
// does a token whose subject no longer exists.
func Auth(tokens *token.Service, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeDetail(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				if err == token.ErrExpired {
					writeDetail(w, http.StatusUnauthorized, "Token expired")
					return
				}
				writeDetail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				writeDetail(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}
			if user == nil {
				writeDetail(w, http.StatusUnauthorized, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin passes the request through only when the authenticated user
// carries the admin flag. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !user.IsAdmin {
			writeDetail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
