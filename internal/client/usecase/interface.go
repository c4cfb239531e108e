// Package usecase implements client business logic, including encryption of the
// sensitive client fields with the owner's key.
package usecase

import (
	"context"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
)

// ClientRepository defines client persistence operations. Every lookup is scoped by
// the owning user.
type ClientRepository interface {
	// Create inserts client and sets its ID and timestamps.
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Client, error)
	List(ctx context.Context, userID int64, offset, limit int) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, userID, id int64) error
}

// UseCase defines the interface for client business logic operations.
type UseCase interface {
	Create(ctx context.Context, userID int64, input domain.ClientInput) (*domain.Client, error)
	Get(ctx context.Context, userID, id int64) (*domain.Client, error)
	List(ctx context.Context, userID int64, offset, limit int) ([]*domain.Client, error)
	Update(ctx context.Context, userID, id int64, input domain.ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, userID, id int64) error
}
