package domain

// EncryptedField is the stored form of one encrypted text value.
//
// EncryptedText is hex(ciphertext) followed by hex(tag); the tag always takes the
// last TagHexLen characters. IV is hex(iv). Both halves are needed, together with
// the owning user's identifier, to recover the plaintext. The zero value is the
// "no value" marker produced when encrypting an empty string.
type EncryptedField struct {
	EncryptedText string
	IV            string
}

// IsEmpty reports whether the field carries no value.
func (f EncryptedField) IsEmpty() bool {
	return f.EncryptedText == "" || f.IV == ""
}

// NullableText returns the encrypted text as a pointer suitable for a nullable column.
func (f EncryptedField) NullableText() *string {
	if f.IsEmpty() {
		return nil
	}
	s := f.EncryptedText
	return &s
}

// NullableIV returns the IV as a pointer suitable for a nullable column.
func (f EncryptedField) NullableIV() *string {
	if f.IsEmpty() {
		return nil
	}
	s := f.IV
	return &s
}

// FieldFromNullable builds an EncryptedField from two nullable columns.
func FieldFromNullable(text, iv *string) EncryptedField {
	if text == nil || iv == nil {
		return EncryptedField{}
	}
	return EncryptedField{EncryptedText: *text, IV: *iv}
}
