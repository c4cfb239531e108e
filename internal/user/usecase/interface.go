// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
	"github.com/jo4ovms/psychology-project/internal/user/domain"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create inserts user and sets its ID and timestamps.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// OutboxEventRepository defines the outbox operation needed to publish user events.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
