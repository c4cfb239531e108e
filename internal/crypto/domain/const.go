// Package domain defines the value types and constants of the per-user field cipher.
//
// Sensitive columns are encrypted with AES-256-GCM under a key derived from the
// system secret and the owning user's identifier. The stored form is a pair of hex
// strings: the ciphertext with its authentication tag appended, and the IV.
package domain

const (
	// KeySize is the length in bytes of every derived AES-256 key.
	KeySize = 32

	// IVSize is the length in bytes of the random GCM initialization vector.
	IVSize = 16

	// TagSize is the length in bytes of the GCM authentication tag.
	TagSize = 16

	// TagHexLen is the number of hex characters the tag occupies at the end of
	// EncryptedField.EncryptedText.
	TagHexLen = TagSize * 2

	// KDFIterations is the PBKDF2 iteration count used for key derivation.
	// Changing it invalidates every stored ciphertext.
	KDFIterations = 10000
)
