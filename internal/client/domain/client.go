// Package domain defines the client (patient) entity.
//
// Document and Notes are sensitive: they are persisted only in encrypted form, keyed
// by the owning user's ID.
package domain

import (
	"time"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Client is a patient owned by a user.
//
// Document and Notes carry the decrypted values. They are nil when the field was
// never set or could not be decrypted. DocumentEncrypted and NotesEncrypted carry the
// persisted form.
type Client struct {
	ID                int64
	UserID            int64
	Name              string
	Email             string
	Phone             string
	BirthDate         *time.Time
	Document          *string
	Notes             *string
	DocumentEncrypted cryptoDomain.EncryptedField
	NotesEncrypted    cryptoDomain.EncryptedField
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ClientInput holds the values accepted when creating or replacing a client.
type ClientInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate *time.Time
	Document  *string
	Notes     *string
}

// Domain-specific errors for client operations.
var (
	// ErrClientNotFound indicates the client does not exist or belongs to another user.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrOwnerNotFound indicates the owning user does not exist.
	ErrOwnerNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
)
