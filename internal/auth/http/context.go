// Package http provides the gin middleware that guards mutating routes: bearer token
// authentication and per-caller rate limiting.
package http

import (
	"context"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
)

// claimsKey is the context key for verified token claims.
type claimsKey struct{}

// WithClaims stores verified claims in the context.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims returns the claims stored by AuthenticationMiddleware, if any.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok && claims != nil
}
