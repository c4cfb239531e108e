// Package mocks provides testify mocks for the appointment use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

// MockAppointmentRepository is a mock implementation of usecase.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockAppointmentRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

// List mocks the List method.
func (m *MockAppointmentRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

// Update mocks the Update method.
func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

// UpdateStatus mocks the UpdateStatus method.
func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, userID, id int64, status domain.Status) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockAppointmentRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
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

// MockOutboxEventRepository is a mock implementation of usecase.OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	userID int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	userID, id int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
