// Package errors holds the sentinel errors every resource module wraps. Use cases
// return them and the HTTP layer turns them into status codes, so handlers never look
// at driver or crypto errors directly.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per HTTP error class.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// kinds is ordered by precedence: an error wrapping more than one sentinel reports the
// first match.
var kinds = []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}

// New returns a plain error with no sentinel attached.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps it in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Kind returns the sentinel err wraps, or nil when it wraps none of them.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
