// Package domain defines the core user domain entities and types.
//
// A user is the practitioner who owns clinical data. The user's integer ID is the
// key-derivation input for every encrypted field the user owns.
package domain

import (
	"time"

	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Role is the access role of a user.
type Role string

const (
	RolePsychologist Role = "psychologist"
	RoleAdmin        Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RolePsychologist || r == RoleAdmin
}

// User represents a practitioner in the system. Password holds the hash, never the
// plain value.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterUserInput holds the data needed to register a user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// UpdateUserInput holds the data accepted when updating a user. A nil Password keeps
// the current hash.
type UpdateUserInput struct {
	Name     string
	Email    string
	Role     Role
	Password *string
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates a role other than psychologist or admin.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
