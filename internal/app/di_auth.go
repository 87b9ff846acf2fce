package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	authService "github.com/allisson/inventory/internal/auth/service"
)

const unsealTimeout = 30 * time.Second

// SecretUnsealer returns the KMS-backed unsealer for JWT_SECRET_CIPHERTEXT.
func (c *Container) SecretUnsealer() authService.SecretUnsealer {
	c.secretUnsealerInit.Do(func() {
		c.secretUnsealer = authService.NewKMSSecretUnsealer()
	})
	return c.secretUnsealer
}

// TokenVerifier returns the bearer token verifier.
func (c *Container) TokenVerifier() (authService.TokenVerifier, error) {
	var err error
	c.tokenVerifierInit.Do(func() {
		c.tokenVerifier, err = c.initTokenVerifier()
		if err != nil {
			c.setInitError("tokenVerifier", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("tokenVerifier"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenVerifier, nil
}

// initTokenVerifier resolves the HMAC secret, preferring the KMS-sealed value.
func (c *Container) initTokenVerifier() (authService.TokenVerifier, error) {
	secret, err := c.jwtSecret()
	if err != nil {
		return nil, err
	}

	verifier, err := authService.NewJWTVerifier(secret, authService.WithLeeway(c.config.JWTLeeway))
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}
	return verifier, nil
}

func (c *Container) jwtSecret() ([]byte, error) {
	if c.config.JWTSecretCiphertext == "" {
		if c.config.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET or JWT_SECRET_CIPHERTEXT must be set")
		}
		return []byte(c.config.JWTSecret), nil
	}

	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("KMS_KEY_URI is required when JWT_SECRET_CIPHERTEXT is set")
	}

	ctx, cancel := context.WithTimeout(c.ctx, unsealTimeout)
	defer cancel()

	secret, err := c.SecretUnsealer().Unseal(ctx, c.config.KMSKeyURI, c.config.JWTSecretCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal jwt secret: %w", err)
	}

	c.Logger().Info("jwt secret unsealed", slog.String("kms_key_uri", c.config.KMSKeyURI))
	return secret, nil
}
