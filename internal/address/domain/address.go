// Package domain defines the client address entity. The street line is stored
// encrypted with the key of the user who owns the client.
package domain

import (
	"time"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Address is a postal address of a client.
//
// Street carries the decrypted street line and is nil when it cannot be decrypted.
// StreetEncrypted carries the persisted form.
type Address struct {
	ID              int64
	ClientID        int64
	Street          *string
	StreetEncrypted cryptoDomain.EncryptedField
	Number          string
	Complement      string
	District        string
	City            string
	State           string
	ZipCode         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AddressInput holds the values accepted when creating or replacing an address.
type AddressInput struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

// ErrAddressNotFound indicates the address does not exist or belongs to another client.
var ErrAddressNotFound = errors.Wrap(errors.ErrNotFound, "address not found")
