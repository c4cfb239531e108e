package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

// gcmSealer is AES-256-GCM with an IVSize (16 byte) nonce and a 16 byte tag appended
// to the ciphertext. Stateless once built.
type gcmSealer struct {
	aead cipher.AEAD
}

func newGCMSealer(key []byte) (*gcmSealer, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &gcmSealer{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random IV and returns ciphertext||tag.
func (g *gcmSealer) Seal(plaintext []byte) (sealed, iv []byte, err error) {
	iv = make([]byte, cryptoDomain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, fmt.Errorf("failed to generate iv: %w", err)
	}
	return g.aead.Seal(nil, iv, plaintext, nil), iv, nil
}

// Open authenticates and decrypts ciphertext||tag.
func (g *gcmSealer) Open(sealed, iv []byte) ([]byte, error) {
	if len(iv) != cryptoDomain.IVSize {
		return nil, cryptoDomain.ErrInvalidIVSize
	}
	plaintext, err := g.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
