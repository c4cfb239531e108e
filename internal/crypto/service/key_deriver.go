package service

import (
	"crypto/sha256"
	"strconv"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

// PBKDF2KeyDeriver derives per-user keys from the system secret with
// PBKDF2-HMAC-SHA256.
//
//	salt     = secret + ":" + userID
//	password = "user:" + userID + ":secret:" + secret
//
// The secret appears in both inputs. Stored ciphertexts depend on this exact
// layout, so it must not change.
type PBKDF2KeyDeriver struct {
	secret     string
	iterations int
}

// NewPBKDF2KeyDeriver creates a key deriver bound to the given system secret.
func NewPBKDF2KeyDeriver(secret string) *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{
		secret:     secret,
		iterations: cryptoDomain.KDFIterations,
	}
}

// DeriveKey returns the 32-byte key for userID.
func (d *PBKDF2KeyDeriver) DeriveKey(userID int64) []byte {
	id := strconv.FormatInt(userID, 10)
	salt := []byte(d.secret + ":" + id)
	password := []byte("user:" + id + ":secret:" + d.secret)

	return pbkdf2.Key(password, salt, d.iterations, cryptoDomain.KeySize, sha256.New)
}
