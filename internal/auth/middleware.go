package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type identityKey struct{}

// IdentityFromContext returns the verified caller identity, or nil when the
// operation was not guarded by the middleware.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey{}).(*Identity)
	return identity
}

// NewMiddleware returns an operation middleware that requires a valid bearer
// credential. On a missing or unverifiable credential it writes 401 and
// returns without calling the rest of the chain.
func NewMiddleware(api huma.API, verifier TokenVerifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		authHeader := ctx.Header("Authorization")
		if authHeader == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrMissingToken.Error())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		next(huma.WithValue(ctx, identityKey{}, identity))
	}
}
