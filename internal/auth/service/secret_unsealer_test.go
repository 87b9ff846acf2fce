package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
)

// generateLocalSecretsURI returns a base64key:// keeper URI with a fresh key.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func seal(t *testing.T, keyURI string, plaintext []byte) string {
	t.Helper()
	ctx := context.Background()

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeper.Close())
	}()

	sealed, err := keeper.Encrypt(ctx, plaintext)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(sealed)
}

func TestKMSSecretUnsealer_Unseal(t *testing.T) {
	ctx := context.Background()
	unsealer := NewKMSSecretUnsealer()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)
		ciphertext := seal(t, keyURI, []byte("jwt-signing-secret"))

		plaintext, err := unsealer.Unseal(ctx, keyURI, ciphertext)

		require.NoError(t, err)
		assert.Equal(t, []byte("jwt-signing-secret"), plaintext)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		ciphertext := seal(t, generateLocalSecretsURI(t), []byte("jwt-signing-secret"))

		plaintext, err := unsealer.Unseal(ctx, generateLocalSecretsURI(t), ciphertext)

		assert.Error(t, err)
		assert.Nil(t, plaintext)
		assert.Contains(t, err.Error(), "failed to unseal secret")
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		plaintext, err := unsealer.Unseal(ctx, generateLocalSecretsURI(t), "not base64!!")

		assert.Error(t, err)
		assert.Nil(t, plaintext)
		assert.Contains(t, err.Error(), "failed to decode sealed secret")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		plaintext, err := unsealer.Unseal(ctx, "invalid://uri", base64.StdEncoding.EncodeToString([]byte("x")))

		assert.Error(t, err)
		assert.Nil(t, plaintext)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})
}
