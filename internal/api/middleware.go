package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/readnest/readnest-server/internal/auth"
	"github.com/readnest/readnest-server/internal/db"
)

type contextKey string

const UserIDKey contextKey = "userID"

type Middleware struct {
	DB *db.DB
}

// AuthMiddleware resolves the bearer credential to a user identity and
// stores it in the request context. Handlers behind it never run without
// a verified identity.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			JSONError(w, "Authentication failed", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			JSONError(w, "Authentication failed", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			JSONError(w, "Authentication failed", http.StatusUnauthorized)
			return
		}

		// The token may outlive the account (DB wiped, user deleted).
		exists, err := m.DB.UserExists(claims.UserID)
		if err != nil {
			slog.Error("auth middleware: user lookup failed", "user_id", claims.UserID, "error", err)
			JSONError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if !exists {
			JSONError(w, "Authentication failed", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user's ID from the request context.
func GetUserID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	return userID, ok
}
