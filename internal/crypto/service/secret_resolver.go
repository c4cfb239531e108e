package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

// ResolveEncryptionSecret returns the system secret used for key derivation.
//
// Without a KMS key URI the raw value is returned as-is. With one, raw must be the
// base64 ciphertext produced by the create-encryption-secret command and is
// unwrapped through the keeper. An empty result is ErrEncryptionSecretNotSet.
func ResolveEncryptionSecret(
	ctx context.Context,
	kms KMSService,
	logger *slog.Logger,
	raw, kmsProvider, kmsKeyURI string,
) (string, error) {
	if raw == "" {
		return "", cryptoDomain.ErrEncryptionSecretNotSet
	}

	if kmsKeyURI == "" {
		return raw, nil
	}
	if err := CheckKMSProvider(kmsProvider, kmsKeyURI); err != nil {
		return "", err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidSecretBase64, err)
	}

	keeper, err := kms.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && logger != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt encryption secret with KMS: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	if len(plaintext) == 0 {
		return "", cryptoDomain.ErrEncryptionSecretNotSet
	}

	if logger != nil {
		logger.Info("encryption secret unwrapped with KMS", slog.String("kms_provider", kmsProvider))
	}

	return string(plaintext), nil
}
