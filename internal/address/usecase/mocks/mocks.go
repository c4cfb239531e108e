// Package mocks provides testify mocks for the address use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
)

// MockAddressRepository is a mock implementation of usecase.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockAddressRepository) GetByID(ctx context.Context, clientID, id int64) (*domain.Address, error) {
	args := m.Called(ctx, clientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// ListByClient mocks the ListByClient method.
func (m *MockAddressRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Address, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Address), args.Error(1)
}

// Update mocks the Update method.
func (m *MockAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockAddressRepository) Delete(ctx context.Context, clientID, id int64) error {
	args := m.Called(ctx, clientID, id)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of usecase.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method.
func (m *MockClientRepository) GetByID(ctx context.Context, userID, id int64) (*clientDomain.Client, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	userID, clientID int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, userID, clientID, id int64) (*domain.Address, error) {
	args := m.Called(ctx, userID, clientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, userID, clientID int64) ([]*domain.Address, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Address), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	userID, clientID, id int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, clientID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, userID, clientID, id int64) error {
	args := m.Called(ctx, userID, clientID, id)
	return args.Error(0)
}
