package service

import (
	"encoding/hex"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

// fieldCipher implements FieldCipher on top of a KeyDeriver and AES-256-GCM.
type fieldCipher struct {
	deriver KeyDeriver
}

// NewFieldCipher creates a FieldCipher bound to the given system secret.
func NewFieldCipher(secret string) FieldCipher {
	return NewFieldCipherWithDeriver(NewPBKDF2KeyDeriver(secret))
}

// NewFieldCipherWithDeriver creates a FieldCipher using a custom key deriver.
func NewFieldCipherWithDeriver(deriver KeyDeriver) FieldCipher {
	return &fieldCipher{deriver: deriver}
}

// Encrypt implements FieldCipher.
func (f *fieldCipher) Encrypt(plaintext string, userID int64) (cryptoDomain.EncryptedField, error) {
	if plaintext == "" {
		return cryptoDomain.EncryptedField{}, nil
	}

	sealer, key, err := f.sealerFor(userID)
	if err != nil {
		return cryptoDomain.EncryptedField{}, err
	}
	defer cryptoDomain.Zero(key)

	// hex(ciphertext||tag) == hex(ciphertext) + hex(tag)
	sealed, iv, err := sealer.Seal([]byte(plaintext))
	if err != nil {
		return cryptoDomain.EncryptedField{}, err
	}

	return cryptoDomain.EncryptedField{
		EncryptedText: hex.EncodeToString(sealed),
		IV:            hex.EncodeToString(iv),
	}, nil
}

// Decrypt implements FieldCipher.
func (f *fieldCipher) Decrypt(encryptedText, iv string, userID int64) (string, bool) {
	if encryptedText == "" || iv == "" {
		return "", false
	}

	plaintext, err := f.open(encryptedText, iv, userID)
	if err != nil {
		return "", false
	}
	return plaintext, true
}

// open decodes the wire format and authenticates the ciphertext. Every failure is
// reported as ErrDecryptionFailed.
func (f *fieldCipher) open(encryptedText, ivHex string, userID int64) (string, error) {
	if len(encryptedText) < cryptoDomain.TagHexLen || !isLowerHex(encryptedText) || !isLowerHex(ivHex) {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	split := len(encryptedText) - cryptoDomain.TagHexLen
	ciphertext, err := hex.DecodeString(encryptedText[:split])
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	tag, err := hex.DecodeString(encryptedText[split:])
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != cryptoDomain.IVSize {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	sealer, key, err := f.sealerFor(userID)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(key)

	plaintext, err := sealer.Open(append(ciphertext, tag...), iv)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// isLowerHex reports whether s uses only the lowercase hex alphabet Encrypt writes.
// Uppercase digits decode to the same bytes, so they are rejected to make any edit
// of the stored text fail.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// sealerFor derives the user's key and builds the sealer. The caller must zero key.
func (f *fieldCipher) sealerFor(userID int64) (*gcmSealer, []byte, error) {
	key := f.deriver.DeriveKey(userID)
	sealer, err := newGCMSealer(key)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, nil, err
	}
	return sealer, key, nil
}

// EncryptOptional encrypts an optional value. A nil or empty value yields the
// empty EncryptedField.
func EncryptOptional(c FieldCipher, value *string, userID int64) (cryptoDomain.EncryptedField, error) {
	if value == nil {
		return cryptoDomain.EncryptedField{}, nil
	}
	return c.Encrypt(*value, userID)
}

// DecryptOptional decrypts a stored field and returns nil when it carries no value
// or cannot be decrypted with userID.
func DecryptOptional(c FieldCipher, field cryptoDomain.EncryptedField, userID int64) *string {
	plaintext, ok := c.Decrypt(field.EncryptedText, field.IV, userID)
	if !ok {
		return nil
	}
	return &plaintext
}
