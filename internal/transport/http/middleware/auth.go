package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/jwt"
)

type contextKey string

const companyNameKey contextKey = "companyName"

// Auth returns middleware that validates the Bearer JWT and injects the
// caller's company name into the request context. Downstream handlers trust
// this identity unconditionally.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), companyNameKey, claims.CompanyName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CompanyFromContext extracts the authenticated company name from the request context.
func CompanyFromContext(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(companyNameKey).(string)
	return c, ok && c != ""
}
