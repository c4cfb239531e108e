package commands

import (
	"errors"
	"fmt"
	"io"

	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
)

// ErrFieldUnavailable is returned by RunDecryptField when the value cannot be
// recovered. The cause is never distinguished.
var ErrFieldUnavailable = errors.New("field unavailable")

type encryptFieldOutput struct {
	UserID        int64  `json:"user_id"`
	EncryptedText string `json:"encrypted_text"`
	IV            string `json:"iv"`
}

type decryptFieldOutput struct {
	UserID int64  `json:"user_id"`
	Value  string `json:"value"`
}

// RunEncryptField encrypts value for userID and prints the stored form.
func RunEncryptField(
	cipher cryptoService.FieldCipher,
	writer io.Writer,
	userID int64,
	value, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if value == "" {
		return fmt.Errorf("value must not be empty")
	}

	field, err := cipher.Encrypt(value, userID)
	if err != nil {
		return fmt.Errorf("failed to encrypt field: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, encryptFieldOutput{
			UserID:        userID,
			EncryptedText: field.EncryptedText,
			IV:            field.IV,
		})
	}

	_, _ = fmt.Fprintf(writer, "encrypted_text: %s\n", field.EncryptedText)
	_, _ = fmt.Fprintf(writer, "iv: %s\n", field.IV)
	return nil
}

// RunDecryptField decrypts a stored field for userID and prints the plaintext.
func RunDecryptField(
	cipher cryptoService.FieldCipher,
	writer io.Writer,
	userID int64,
	encryptedText, iv, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	value, ok := cipher.Decrypt(encryptedText, iv, userID)
	if !ok {
		return ErrFieldUnavailable
	}

	if format == "json" {
		return writeJSON(writer, decryptFieldOutput{UserID: userID, Value: value})
	}

	_, _ = fmt.Fprintln(writer, value)
	return nil
}
