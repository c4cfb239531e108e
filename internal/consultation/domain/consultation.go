// Package domain defines the consultation (session record) entity.
package domain

import (
	"strings"
	"time"

	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	"github.com/jo4ovms/psychology-project/internal/errors"
)

// Consultation is the clinical record of a session held with a client, optionally
// tied to the appointment it fulfilled.
//
// Summary and Observations carry decrypted values and are nil when unset or
// undecryptable; the *Encrypted fields carry the persisted form.
type Consultation struct {
	ID                    int64
	UserID                int64
	ClientID              int64
	AppointmentID         *int64
	SessionDate           time.Time
	Summary               *string
	SummaryEncrypted      cryptoDomain.EncryptedField
	Observations          *string
	ObservationsEncrypted cryptoDomain.EncryptedField
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ConsultationInput holds the values accepted when creating or replacing a consultation.
type ConsultationInput struct {
	ClientID      int64
	AppointmentID *int64
	SessionDate   time.Time
	Summary       string
	Observations  *string
}

// Validate checks the required fields of the input.
func (in ConsultationInput) Validate() error {
	if strings.TrimSpace(in.Summary) == "" {
		return ErrSummaryRequired
	}
	if in.SessionDate.IsZero() {
		return ErrSessionDateRequired
	}
	return nil
}

// ListFilter narrows a consultation listing. A nil ClientID lists every client.
type ListFilter struct {
	ClientID *int64
	Offset   int
	Limit    int
}

// Domain-specific errors for consultation operations.
var (
	// ErrConsultationNotFound indicates the consultation does not exist or belongs to another user.
	ErrConsultationNotFound = errors.Wrap(errors.ErrNotFound, "consultation not found")

	// ErrSummaryRequired indicates a blank summary.
	ErrSummaryRequired = errors.Wrap(errors.ErrInvalidInput, "summary is required")

	// ErrSessionDateRequired indicates a missing session date.
	ErrSessionDateRequired = errors.Wrap(errors.ErrInvalidInput, "session date is required")

	// ErrAppointmentMismatch indicates the referenced appointment belongs to another client.
	ErrAppointmentMismatch = errors.Wrap(errors.ErrInvalidInput, "appointment does not belong to the client")

	// ErrAppointmentCancelled indicates the referenced appointment was cancelled.
	ErrAppointmentCancelled = errors.Wrap(errors.ErrConflict, "appointment was cancelled")
)
