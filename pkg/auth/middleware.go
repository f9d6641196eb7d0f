package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rojahomes/rentmarket/pkg/utils"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserTypeKey ContextKey = "userType"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserType gates a route group to the listed account types. It must
// run after AuthMiddleware.
func RequireUserType(types ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, _ := r.Context().Value(UserTypeKey).(string)
			for _, t := range types {
				if userType == t {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		})
	}
}
