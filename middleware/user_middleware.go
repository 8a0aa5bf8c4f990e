package middleware

import (
	"context"
	"net/http"

	"github.com/nexusboard/nexus-api/auth"
	"github.com/nexusboard/nexus-api/config"
	"github.com/nexusboard/nexus-api/models"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireUser validates the session cookie and attaches the matching
// user to the request context for downstream handlers.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		username, err := auth.ParseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		var user models.User
		if err := config.Database.Where("username = ?", username).First(&user).Error; err != nil {
			// Token for an account that no longer exists
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// UserFromContext returns the authenticated user attached by RequireUser.
func UserFromContext(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	return user, ok
}
