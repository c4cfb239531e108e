// Package domain defines outbox events: facts written in the same transaction as the
// entity they describe and delivered later by the outbox worker.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus is the delivery state of an event.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// Event types written by the resource modules.
const (
	EventTypeUserCreated          = "user.created"
	EventTypeAppointmentScheduled = "appointment.scheduled"
)

// OutboxEvent is one row of outbox_events. Payload is JSON and never carries
// decrypted clinical fields.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserCreatedPayload is the payload of a user.created event.
type UserCreatedPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AppointmentScheduledPayload is the payload of an appointment.scheduled event.
// Notes are never included.
type AppointmentScheduledPayload struct {
	AppointmentID   int64     `json:"appointment_id"`
	UserID          int64     `json:"user_id"`
	ClientID        int64     `json:"client_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// NewOutboxEvent builds a pending event with a time-ordered id and a JSON payload.
func NewOutboxEvent(eventType string, payload any) (*OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(data),
		Status:    OutboxEventStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkProcessed records a successful delivery.
func (e *OutboxEvent) MarkProcessed(at time.Time) {
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &at
	e.LastError = nil
	e.UpdatedAt = at
}

// RecordFailure counts a failed delivery attempt made at the given time. The event
// stays pending until it has failed maxRetries times, then it is parked as failed.
// UpdatedAt carries the attempt time that the retry backoff is measured from.
func (e *OutboxEvent) RecordFailure(cause error, maxRetries int, at time.Time) {
	msg := cause.Error()
	e.Retries++
	e.LastError = &msg
	e.UpdatedAt = at
	if e.Retries >= maxRetries {
		e.Status = OutboxEventStatusFailed
	}
}
