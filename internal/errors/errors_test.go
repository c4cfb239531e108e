package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type constraintError struct {
	Constraint string
}

func (e *constraintError) Error() string { return "violates " + e.Constraint }

func TestWrap(t *testing.T) {
	t.Run("KeepsChain", func(t *testing.T) {
		err := Wrap(sql.ErrNoRows, "failed to get client")
		assert.EqualError(t, err, "failed to get client: sql: no rows in result set")
		assert.True(t, Is(err, sql.ErrNoRows))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "failed to get client"))
	})

	t.Run("DomainError", func(t *testing.T) {
		errClientNotFound := Wrap(ErrNotFound, "client not found")
		err := Wrap(errClientNotFound, "get client")

		assert.True(t, Is(err, errClientNotFound))
		assert.True(t, Is(err, ErrNotFound))
		assert.False(t, Is(err, ErrConflict))
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"plain", New("boom"), nil},
		{"not found", Wrap(ErrNotFound, "appointment not found"), ErrNotFound},
		{"conflict", fmt.Errorf("update: %w", Wrap(ErrConflict, "appointment is completed")), ErrConflict},
		{"invalid input", Wrap(ErrInvalidInput, "invalid role"), ErrInvalidInput},
		{"unauthorized", ErrUnauthorized, ErrUnauthorized},
		{"forbidden", Wrap(ErrForbidden, "client belongs to another user"), ErrForbidden},
		{"joined", errors.Join(ErrConflict, ErrNotFound), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestAs(t *testing.T) {
	err := Wrap(&constraintError{Constraint: "users_email_key"}, "failed to create user")

	var target *constraintError
	assert.True(t, As(err, &target))
	assert.Equal(t, "users_email_key", target.Constraint)
}
