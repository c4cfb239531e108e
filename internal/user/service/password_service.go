// Package service provides the password hashing service used for user credentials.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// PasswordService hashes user passwords.
type PasswordService interface {
	// Hash returns an encoded Argon2id hash of password.
	Hash(password string) (string, error)
}

type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService using the interactive Argon2id policy.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	return &passwordService{hasher: hasher}, nil
}

// Hash implements PasswordService.
func (s *passwordService) Hash(password string) (string, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}
