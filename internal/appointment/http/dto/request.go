// Package dto provides data transfer objects for the appointment HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

// AppointmentRequest represents the API request for creating or replacing an
// appointment. ScheduledAt is an RFC3339 timestamp.
type AppointmentRequest struct {
	ClientID        int64     `json:"client_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
}

// Validate validates the AppointmentRequest.
func (r *AppointmentRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ClientID,
			validation.Required.Error("client_id is required"),
			validation.Min(int64(1)).Error("client_id must be a positive integer"),
		),
		validation.Field(&r.ScheduledAt,
			validation.Required.Error("scheduled_at is required"),
		),
		validation.Field(&r.DurationMinutes,
			validation.Required.Error("duration_minutes is required"),
			validation.Min(domain.MinDurationMinutes).Error("duration_minutes must be at least 15"),
			validation.Max(domain.MaxDurationMinutes).Error("duration_minutes must be at most 240"),
		),
		validation.Field(&r.Status,
			validation.In(
				string(domain.StatusScheduled),
				string(domain.StatusConfirmed),
				string(domain.StatusCompleted),
				string(domain.StatusCancelled),
			).Error("status must be scheduled, confirmed, completed or cancelled"),
		),
		validation.Field(&r.Notes,
			validation.Length(0, 10000).Error("notes must be at most 10000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *AppointmentRequest) ToInput() domain.AppointmentInput {
	return domain.AppointmentInput{
		ClientID:        r.ClientID,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Status:          domain.Status(r.Status),
		Notes:           r.Notes,
	}
}
