// Package usecase implements consultation business logic.
package usecase

import (
	"context"

	appointmentDomain "github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
)

// ConsultationRepository defines consultation persistence operations scoped by owner.
type ConsultationRepository interface {
	// Create inserts consultation and sets its ID and timestamps.
	Create(ctx context.Context, consultation *domain.Consultation) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Consultation, error)
	List(ctx context.Context, userID int64, filter domain.ListFilter) ([]*domain.Consultation, error)
	Update(ctx context.Context, consultation *domain.Consultation) error
	Delete(ctx context.Context, userID, id int64) error
}

// ClientRepository resolves the client of a consultation, scoped by owner.
type ClientRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*clientDomain.Client, error)
}

// AppointmentRepository resolves and completes the appointment a consultation fulfills.
type AppointmentRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*appointmentDomain.Appointment, error)
	UpdateStatus(ctx context.Context, userID, id int64, status appointmentDomain.Status) error
}

// UseCase defines the interface for consultation business logic operations.
type UseCase interface {
	Create(ctx context.Context, userID int64, input domain.ConsultationInput) (*domain.Consultation, error)
	Get(ctx context.Context, userID, id int64) (*domain.Consultation, error)
	List(ctx context.Context, userID int64, filter domain.ListFilter) ([]*domain.Consultation, error)
	Update(ctx context.Context, userID, id int64, input domain.ConsultationInput) (*domain.Consultation, error)
	Delete(ctx context.Context, userID, id int64) error
}
