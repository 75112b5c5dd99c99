package auth

import (
	"context"
	"net/http"
	"strings"

	"newsboard/internal/handler/http/respond"
	authsvc "newsboard/internal/service/auth"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// CurrentUser returns the verified token claims for the request, or nil
// outside a protected route.
func CurrentUser(ctx context.Context) *authsvc.Claims {
	claims, _ := ctx.Value(ctxClaims).(*authsvc.Claims)
	return claims
}

// RequireAuth rejects requests without a valid bearer token. A missing
// token is a 401; a token that fails verification is a 403 carrying the
// verification error. Verified claims land in the request context.
func RequireAuth(tokens *authsvc.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, prefix) {
				respond.JSON(w, http.StatusUnauthorized, map[string]string{
					"message": "Not authentificated. Please login",
				})
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(authz, prefix))
			if err != nil {
				respond.JSON(w, http.StatusForbidden, map[string]string{
					"message": err.Error(),
				})
				return
			}

			ctx := context.WithValue(r.Context(), ctxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
