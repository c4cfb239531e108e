// Package service implements the per-user field cipher: PBKDF2 key derivation,
// AES-256-GCM sealing with a 16-byte IV, and the hex wire format.
package service

import (
	"context"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

// KeyDeriver derives the per-user symmetric key.
type KeyDeriver interface {
	// DeriveKey returns a fresh KeySize-byte key for userID. Callers own the slice
	// and should zero it after use.
	DeriveKey(userID int64) []byte
}

// FieldCipher encrypts and decrypts sensitive text fields for a given user.
type FieldCipher interface {
	// Encrypt returns the stored form of plaintext. An empty plaintext yields the
	// empty EncryptedField and no error.
	Encrypt(plaintext string, userID int64) (cryptoDomain.EncryptedField, error)

	// Decrypt recovers the plaintext. The boolean is false when either input is
	// empty or when decryption fails for any reason.
	Decrypt(encryptedText, iv string, userID int64) (string, bool)
}

// KMSService opens KMS keepers used to unwrap the encryption secret.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
