// Package usecase implements appointment business logic.
package usecase

import (
	"context"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

// AppointmentRepository defines appointment persistence operations scoped by owner.
type AppointmentRepository interface {
	// Create inserts appointment and sets its ID and timestamps.
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Appointment, error)
	List(ctx context.Context, userID int64, filter domain.ListFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	UpdateStatus(ctx context.Context, userID, id int64, status domain.Status) error
	Delete(ctx context.Context, userID, id int64) error
}

// ClientRepository resolves the client of an appointment, scoped by owner.
type ClientRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*clientDomain.Client, error)
}

// OutboxEventRepository defines the outbox operation needed to publish appointment events.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UseCase defines the interface for appointment business logic operations.
type UseCase interface {
	Create(ctx context.Context, userID int64, input domain.AppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, userID, id int64) (*domain.Appointment, error)
	List(ctx context.Context, userID int64, filter domain.ListFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, userID, id int64, input domain.AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, userID, id int64) error
}
