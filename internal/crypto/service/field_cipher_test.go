package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
)

const testSecret = "s3cr3t"

// flipHexChar returns s with the hex digit at i replaced by a different lowercase digit.
func flipHexChar(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}

func TestFieldCipher_Encrypt(t *testing.T) {
	c := NewFieldCipher(testSecret)

	t.Run("concrete scenario", func(t *testing.T) {
		field, err := c.Encrypt("hello", 42)
		require.NoError(t, err)

		assert.Len(t, field.IV, 32)
		assert.Len(t, field.EncryptedText, 10+32)
		assert.True(t, isLowerHex(field.IV))
		assert.True(t, isLowerHex(field.EncryptedText))

		plaintext, ok := c.Decrypt(field.EncryptedText, field.IV, 42)
		assert.True(t, ok)
		assert.Equal(t, "hello", plaintext)

		plaintext, ok = c.Decrypt(field.EncryptedText, field.IV, 43)
		assert.False(t, ok)
		assert.Empty(t, plaintext)
	})

	t.Run("empty plaintext yields no value", func(t *testing.T) {
		field, err := c.Encrypt("", 42)
		require.NoError(t, err)
		assert.True(t, field.IsEmpty())
		assert.Equal(t, cryptoDomain.EncryptedField{}, field)
	})

	t.Run("fresh iv per call", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 50; i++ {
			field, err := c.Encrypt("same plaintext", 1)
			require.NoError(t, err)
			_, dup := seen[field.IV]
			assert.False(t, dup, "iv reused")
			seen[field.IV] = struct{}{}
		}
	})
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := NewFieldCipher(testSecret)

	tests := []struct {
		name      string
		plaintext string
		userID    int64
	}{
		{"ascii", "patient notes", 1},
		{"unicode", "sessão às 14h, paciente ansioso 😟", 7},
		{"long", strings.Repeat("x", 4096), 99},
		{"negative user id", "value", -5},
		{"zero user id", "value", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := c.Encrypt(tt.plaintext, tt.userID)
			require.NoError(t, err)
			assert.Len(t, field.EncryptedText, 2*len(tt.plaintext)+cryptoDomain.TagHexLen)

			plaintext, ok := c.Decrypt(field.EncryptedText, field.IV, tt.userID)
			assert.True(t, ok)
			assert.Equal(t, tt.plaintext, plaintext)
		})
	}
}

func TestFieldCipher_Isolation(t *testing.T) {
	c := NewFieldCipher(testSecret)

	field, err := c.Encrypt("confidential", 10)
	require.NoError(t, err)

	t.Run("other user", func(t *testing.T) {
		_, ok := c.Decrypt(field.EncryptedText, field.IV, 11)
		assert.False(t, ok)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewFieldCipher("another-secret")
		_, ok := other.Decrypt(field.EncryptedText, field.IV, 10)
		assert.False(t, ok)
	})

	t.Run("iv from another encryption", func(t *testing.T) {
		second, err := c.Encrypt("confidential", 10)
		require.NoError(t, err)
		_, ok := c.Decrypt(field.EncryptedText, second.IV, 10)
		assert.False(t, ok)
	})
}

func TestFieldCipher_TamperDetection(t *testing.T) {
	c := NewFieldCipher(testSecret)

	field, err := c.Encrypt("hello", 42)
	require.NoError(t, err)

	t.Run("any change in encrypted text", func(t *testing.T) {
		for i := range field.EncryptedText {
			_, ok := c.Decrypt(flipHexChar(field.EncryptedText, i), field.IV, 42)
			assert.False(t, ok, "tampered text at %d accepted", i)
		}
	})

	t.Run("any change in iv", func(t *testing.T) {
		for i := range field.IV {
			_, ok := c.Decrypt(field.EncryptedText, flipHexChar(field.IV, i), 42)
			assert.False(t, ok, "tampered iv at %d accepted", i)
		}
	})

	t.Run("uppercase hex", func(t *testing.T) {
		_, ok := c.Decrypt(strings.ToUpper(field.EncryptedText), field.IV, 42)
		assert.False(t, ok)
		_, ok = c.Decrypt(field.EncryptedText, strings.ToUpper(field.IV), 42)
		assert.False(t, ok)
	})
}

func TestFieldCipher_Decrypt_MalformedInput(t *testing.T) {
	c := NewFieldCipher(testSecret)

	field, err := c.Encrypt("hello", 42)
	require.NoError(t, err)

	tests := []struct {
		name          string
		encryptedText string
		iv            string
	}{
		{"empty text", "", field.IV},
		{"empty iv", field.EncryptedText, ""},
		{"both empty", "", ""},
		{"shorter than tag", field.EncryptedText[:20], field.IV},
		{"only tag", field.EncryptedText[10:], field.IV},
		{"odd length text", field.EncryptedText[1:], field.IV},
		{"non hex text", "zz" + field.EncryptedText[2:], field.IV},
		{"non hex iv", field.EncryptedText, "zz" + field.IV[2:]},
		{"short iv", field.EncryptedText, field.IV[:24]},
		{"long iv", field.EncryptedText, field.IV + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext, ok := c.Decrypt(tt.encryptedText, tt.iv, 42)
			assert.False(t, ok)
			assert.Empty(t, plaintext)
		})
	}
}

func TestFieldCipher_Concurrent(t *testing.T) {
	c := NewFieldCipher(testSecret)

	var wg sync.WaitGroup
	for i := int64(0); i < 16; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			field, err := c.Encrypt("concurrent", userID)
			if !assert.NoError(t, err) {
				return
			}
			plaintext, ok := c.Decrypt(field.EncryptedText, field.IV, userID)
			assert.True(t, ok)
			assert.Equal(t, "concurrent", plaintext)
		}(i)
	}
	wg.Wait()
}

func TestEncryptOptional(t *testing.T) {
	c := NewFieldCipher(testSecret)

	t.Run("nil value", func(t *testing.T) {
		field, err := EncryptOptional(c, nil, 1)
		require.NoError(t, err)
		assert.True(t, field.IsEmpty())
	})

	t.Run("empty value", func(t *testing.T) {
		empty := ""
		field, err := EncryptOptional(c, &empty, 1)
		require.NoError(t, err)
		assert.True(t, field.IsEmpty())
	})

	t.Run("value round trips through DecryptOptional", func(t *testing.T) {
		value := "document 123"
		field, err := EncryptOptional(c, &value, 1)
		require.NoError(t, err)

		got := DecryptOptional(c, field, 1)
		require.NotNil(t, got)
		assert.Equal(t, value, *got)

		assert.Nil(t, DecryptOptional(c, field, 2))
	})

	t.Run("empty field decrypts to nil", func(t *testing.T) {
		assert.Nil(t, DecryptOptional(c, cryptoDomain.EncryptedField{}, 1))
	})
}
