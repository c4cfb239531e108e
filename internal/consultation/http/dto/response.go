package dto

import (
	"time"

	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
)

// ConsultationResponse represents a consultation in API responses. Summary and
// Observations are null when unset or when they cannot be decrypted.
type ConsultationResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ClientID      int64     `json:"client_id"`
	AppointmentID *int64    `json:"appointment_id"`
	SessionDate   time.Time `json:"session_date"`
	Summary       *string   `json:"summary"`
	Observations  *string   `json:"observations"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListConsultationsResponse represents a paginated list of consultations in API responses.
type ListConsultationsResponse struct {
	Data []ConsultationResponse `json:"data"`
}

// MapConsultationToResponse converts a domain consultation to an API response.
func MapConsultationToResponse(consultation *domain.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:            consultation.ID,
		UserID:        consultation.UserID,
		ClientID:      consultation.ClientID,
		AppointmentID: consultation.AppointmentID,
		SessionDate:   consultation.SessionDate,
		Summary:       consultation.Summary,
		Observations:  consultation.Observations,
		CreatedAt:     consultation.CreatedAt,
		UpdatedAt:     consultation.UpdatedAt,
	}
}

// MapConsultationsToListResponse converts a slice of domain consultations to a list response.
func MapConsultationsToListResponse(consultations []*domain.Consultation) ListConsultationsResponse {
	data := make([]ConsultationResponse, 0, len(consultations))
	for _, consultation := range consultations {
		data = append(data, MapConsultationToResponse(consultation))
	}
	return ListConsultationsResponse{Data: data}
}
