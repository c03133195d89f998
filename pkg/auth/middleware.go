package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/boostpanel/boostpanel/pkg/utils"
)

type ContextKey string

const ActorIDKey ContextKey = "actorID"

// AuthMiddleware rejects requests without a valid bearer token and puts the
// actor id from the claims into the request context.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ActorIDKey, claims.ActorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
