package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RolePsychologist.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("patient").IsValid())
}

func TestUserErrors(t *testing.T) {
	assert.True(t, apperrors.Is(ErrUserNotFound, apperrors.ErrNotFound))
	assert.True(t, apperrors.Is(ErrUserAlreadyExists, apperrors.ErrConflict))
	assert.True(t, apperrors.Is(ErrInvalidRole, apperrors.ErrInvalidInput))
}
