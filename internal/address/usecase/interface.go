// Package usecase implements address business logic.
package usecase

import (
	"context"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
)

// AddressRepository defines address persistence operations scoped by client.
type AddressRepository interface {
	// Create inserts address and sets its ID and timestamps.
	Create(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, clientID, id int64) (*domain.Address, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, clientID, id int64) error
}

// ClientRepository resolves the client an address belongs to, scoped by owner.
type ClientRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*clientDomain.Client, error)
}

// UseCase defines the interface for address business logic operations. Every
// operation first checks that the client belongs to userID.
type UseCase interface {
	Create(ctx context.Context, userID, clientID int64, input domain.AddressInput) (*domain.Address, error)
	Get(ctx context.Context, userID, clientID, id int64) (*domain.Address, error)
	List(ctx context.Context, userID, clientID int64) ([]*domain.Address, error)
	Update(ctx context.Context, userID, clientID, id int64, input domain.AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, userID, clientID, id int64) error
}
