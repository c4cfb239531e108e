// Package dto provides data transfer objects for the consultation HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

// ConsultationRequest represents the API request for recording or replacing a
// consultation. SessionDate is an RFC3339 timestamp.
type ConsultationRequest struct {
	ClientID      int64     `json:"client_id"`
	AppointmentID *int64    `json:"appointment_id"`
	SessionDate   time.Time `json:"session_date"`
	Summary       string    `json:"summary"`
	Observations  *string   `json:"observations"`
}

// Validate validates the ConsultationRequest.
func (r *ConsultationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ClientID,
			validation.Required.Error("client_id is required"),
			validation.Min(int64(1)).Error("client_id must be a positive integer"),
		),
		validation.Field(&r.AppointmentID,
			validation.NilOrNotEmpty.Error("appointment_id must be a positive integer"),
			validation.Min(int64(1)).Error("appointment_id must be a positive integer"),
		),
		validation.Field(&r.SessionDate,
			validation.Required.Error("session_date is required"),
		),
		validation.Field(&r.Summary,
			validation.Required.Error("summary is required"),
			appValidation.NotBlank,
			validation.Length(1, 20000).Error("summary must be at most 20000 characters"),
		),
		validation.Field(&r.Observations,
			validation.Length(0, 20000).Error("observations must be at most 20000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *ConsultationRequest) ToInput() domain.ConsultationInput {
	return domain.ConsultationInput{
		ClientID:      r.ClientID,
		AppointmentID: r.AppointmentID,
		SessionDate:   r.SessionDate,
		Summary:       r.Summary,
		Observations:  r.Observations,
	}
}
