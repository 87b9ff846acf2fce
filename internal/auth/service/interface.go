// Package service implements the stateless credential checks used by the HTTP gate
// and the CLI: bearer token verification and unsealing of the signing secret.
package service

import (
	"context"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
)

// TokenVerifier validates a compact JWT against the shared signing secret.
//
// Verify returns authDomain.ErrMissingCredential for an empty token and an error
// wrapping authDomain.ErrInvalidCredential for any token that is malformed, signed
// with a non-HMAC algorithm, signed with a different secret, expired or not yet valid.
// Implementations are safe for concurrent use.
type TokenVerifier interface {
	Verify(token string) (*authDomain.Claims, error)
}

// SecretUnsealer decrypts a KMS-sealed secret.
type SecretUnsealer interface {
	// Unseal opens the keeper at keyURI and decrypts the base64 encoded ciphertext.
	Unseal(ctx context.Context, keyURI, ciphertext string) ([]byte, error)
}
