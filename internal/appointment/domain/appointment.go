// Package domain defines the appointment entity and its status enum.
package domain

import (
	"time"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Allowed session length in minutes.
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 240
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment is a scheduled session between a user and one of the user's clients.
//
// Notes carries the decrypted value and is nil when unset or undecryptable.
// NotesEncrypted carries the persisted form.
type Appointment struct {
	ID              int64
	UserID          int64
	ClientID        int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          Status
	Notes           *string
	NotesEncrypted  cryptoDomain.EncryptedField
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndsAt returns the time the appointment is expected to finish.
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// AppointmentInput holds the values accepted when creating or replacing an
// appointment. An empty Status means scheduled on create and unchanged on update.
type AppointmentInput struct {
	ClientID        int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          Status
	Notes           *string
}

// Validate checks the duration and status of the input.
func (in AppointmentInput) Validate() error {
	if in.DurationMinutes < MinDurationMinutes || in.DurationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if in.Status != "" && !in.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// ListFilter narrows an appointment listing. Nil fields are ignored. From and To
// bound ScheduledAt inclusively.
type ListFilter struct {
	ClientID *int64
	Status   *Status
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

// Domain-specific errors for appointment operations.
var (
	// ErrAppointmentNotFound indicates the appointment does not exist or belongs to another user.
	ErrAppointmentNotFound = errors.Wrap(errors.ErrNotFound, "appointment not found")

	// ErrInvalidStatus indicates an unknown status value.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid appointment status")

	// ErrInvalidDuration indicates a duration outside the allowed range.
	ErrInvalidDuration = errors.Wrap(errors.ErrInvalidInput, "duration must be between 15 and 240 minutes")

	// ErrInvalidWindow indicates a list filter whose from bound is after its to bound.
	ErrInvalidWindow = errors.Wrap(errors.ErrInvalidInput, "from must not be after to")

	// ErrTerminalStatus indicates a status change on a completed or cancelled appointment.
	ErrTerminalStatus = errors.Wrap(errors.ErrConflict, "appointment is already completed or cancelled")
)
