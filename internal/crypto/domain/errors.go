package domain

import (
	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Field cipher error definitions.
var (
	// ErrInvalidKeySize indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidIVSize indicates an IV that is not exactly IVSize bytes.
	ErrInvalidIVSize = errors.Wrap(errors.ErrInvalidInput, "invalid iv size")

	// ErrDecryptionFailed collapses every decryption failure (bad hex, truncated
	// input, wrong key, tampered tag). The cause is not exposed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrEncryptionSecretNotSet indicates ENCRYPTION_SECRET resolved to an empty value.
	ErrEncryptionSecretNotSet = errors.New("ENCRYPTION_SECRET is not set")

	// ErrInvalidKMSProvider indicates a KMS_PROVIDER that is unknown or does not match
	// the scheme of KMS_KEY_URI.
	ErrInvalidKMSProvider = errors.Wrap(errors.ErrInvalidInput, "invalid KMS provider")

	// ErrInvalidSecretBase64 indicates a KMS-wrapped secret that is not valid base64.
	ErrInvalidSecretBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid base64 encryption secret")
)
