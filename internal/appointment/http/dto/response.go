package dto

import (
	"time"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
)

// AppointmentResponse represents an appointment in API responses. Notes is null when
// unset or when it cannot be decrypted.
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ClientID        int64     `json:"client_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	EndsAt          time.Time `json:"ends_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListAppointmentsResponse represents a paginated list of appointments in API responses.
type ListAppointmentsResponse struct {
	Data []AppointmentResponse `json:"data"`
}

// MapAppointmentToResponse converts a domain appointment to an API response.
func MapAppointmentToResponse(appointment *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		ClientID:        appointment.ClientID,
		ScheduledAt:     appointment.ScheduledAt,
		EndsAt:          appointment.EndsAt(),
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// MapAppointmentsToListResponse converts a slice of domain appointments to a list response.
func MapAppointmentsToListResponse(appointments []*domain.Appointment) ListAppointmentsResponse {
	data := make([]AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		data = append(data, MapAppointmentToResponse(appointment))
	}
	return ListAppointmentsResponse{Data: data}
}
