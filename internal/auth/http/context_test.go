package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
)

func TestClaimsContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		claims := &authDomain.Claims{Subject: "admin"}
		ctx := WithClaims(context.Background(), claims)

		got, ok := GetClaims(ctx)
		assert.True(t, ok)
		assert.Same(t, claims, got)
	})

	t.Run("Absent", func(t *testing.T) {
		got, ok := GetClaims(context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("NilClaims", func(t *testing.T) {
		ctx := WithClaims(context.Background(), nil)
		_, ok := GetClaims(ctx)
		assert.False(t, ok)
	})
}
