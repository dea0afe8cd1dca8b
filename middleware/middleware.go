package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth validates the bearer token and stores the resolved identity in the
// request context. Every route except the public invite-link info goes
// through it.
func Auth(verifier *utils.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logging.Logger.Warnf("Event ID: AUTH_MISSING_HEADER, Description: Authorization header missing for %s %s", r.Method, r.URL.Path)
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := verifier.ValidateToken(tokenStr)
			if err != nil {
				logging.Logger.Warnf("Event ID: AUTH_INVALID_TOKEN, Description: Invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			user := models.UserMeta{
				ID:    claims.Subject,
				Email: claims.Email,
				Name:  claims.Name,
				Image: claims.Image,
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated identity stored by Auth.
func UserFrom(r *http.Request) (models.UserMeta, bool) {
	user, ok := r.Context().Value(userContextKey).(models.UserMeta)
	return user, ok
}
