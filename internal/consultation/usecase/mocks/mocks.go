// Package mocks provides testify mocks for the consultation use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	appointmentDomain "github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
)

// MockConsultationRepository is a mock implementation of usecase.ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockConsultationRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Consultation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

// List mocks the List method.
func (m *MockConsultationRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Consultation), args.Error(1)
}

// Update mocks the Update method.
func (m *MockConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockConsultationRepository) Delete(ctx context.Context, userID, id int64) error {
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

// MockAppointmentRepository is a mock implementation of usecase.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method.
func (m *MockAppointmentRepository) GetByID(
	ctx context.Context,
	userID, id int64,
) (*appointmentDomain.Appointment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointmentDomain.Appointment), args.Error(1)
}

// UpdateStatus mocks the UpdateStatus method.
func (m *MockAppointmentRepository) UpdateStatus(
	ctx context.Context,
	userID, id int64,
	status appointmentDomain.Status,
) error {
	args := m.Called(ctx, userID, id, status)
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
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, userID, id int64) (*domain.Consultation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Consultation), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	userID, id int64,
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
