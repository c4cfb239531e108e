package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
)

// encryptionSecretSize is the number of random bytes in a generated secret.
const encryptionSecretSize = 32

// RunCreateEncryptionSecret generates a random 32-byte secret and prints it base64
// encoded as an ENCRYPTION_SECRET line. With kmsProvider and kmsKeyURI set, the
// secret is wrapped by the KMS keeper first and the KMS settings are printed too.
// The raw secret bytes are zeroed before returning.
//
// Security: never use the localsecrets provider in production.
func RunCreateEncryptionSecret(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsProvider, kmsKeyURI string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be used together")
	}
	if kmsKeyURI != "" {
		if err := cryptoService.CheckKMSProvider(kmsProvider, kmsKeyURI); err != nil {
			return err
		}
	}

	secret := make([]byte, encryptionSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate encryption secret: %w", err)
	}
	defer cryptoDomain.Zero(secret)

	encoded := base64.StdEncoding.EncodeToString(secret)

	if kmsKeyURI == "" {
		_, _ = fmt.Fprintln(writer, "# Encryption secret (plaintext mode)")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_SECRET=\"%s\"\n", encoded)
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, []byte(encoded))
	if err != nil {
		return fmt.Errorf("failed to encrypt secret with KMS: %w", err)
	}

	logger.Info("encryption secret wrapped with KMS", slog.String("kms_provider", kmsProvider))

	_, _ = fmt.Fprintln(writer, "# Encryption secret (KMS mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_SECRET=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))

	return nil
}
