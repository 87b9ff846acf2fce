package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	// Register the KMS keeper drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

type kmsSecretUnsealer struct{}

// NewKMSSecretUnsealer returns a SecretUnsealer backed by gocloud.dev/secrets.
// Supported key URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func NewKMSSecretUnsealer() SecretUnsealer {
	return &kmsSecretUnsealer{}
}

func (k *kmsSecretUnsealer) Unseal(ctx context.Context, keyURI, ciphertext string) (plaintext []byte, err error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sealed secret: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && err == nil {
			plaintext, err = nil, fmt.Errorf("failed to close KMS keeper: %w", closeErr)
		}
	}()

	plaintext, err = keeper.Decrypt(ctx, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal secret: %w", err)
	}
	return plaintext, nil
}
