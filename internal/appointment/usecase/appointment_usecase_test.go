package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	"github.com/jo4ovms/psychology-project/internal/appointment/usecase/mocks"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
	databaseMocks "github.com/jo4ovms/psychology-project/internal/database/mocks"
	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

const testUserID = int64(42)

type appointmentTestDeps struct {
	txManager       *databaseMocks.MockTxManager
	appointmentRepo *mocks.MockAppointmentRepository
	clientRepo      *mocks.MockClientRepository
	outboxRepo      *mocks.MockOutboxEventRepository
	cipher          cryptoService.FieldCipher
}

func newAppointmentTestDeps(t *testing.T) (*appointmentTestDeps, UseCase) {
	t.Helper()
	deps := &appointmentTestDeps{
		txManager:       databaseMocks.NewMockTxManager(t),
		appointmentRepo: &mocks.MockAppointmentRepository{},
		clientRepo:      &mocks.MockClientRepository{},
		outboxRepo:      &mocks.MockOutboxEventRepository{},
		cipher:          cryptoService.NewFieldCipher("appointment-test-secret"),
	}
	t.Cleanup(func() {
		deps.appointmentRepo.AssertExpectations(t)
		deps.clientRepo.AssertExpectations(t)
		deps.outboxRepo.AssertExpectations(t)
	})
	uc := NewAppointmentUseCase(deps.txManager, deps.appointmentRepo, deps.clientRepo, deps.outboxRepo, deps.cipher)
	return deps, uc
}

func strPtr(s string) *string { return &s }

func scheduledAt() time.Time {
	return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
}

func TestAppointmentUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_EmitsScheduledEvent", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		input := domain.AppointmentInput{
			ClientID:        7,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 50,
			Notes:           strPtr("bring previous exams"),
		}

		deps.clientRepo.On("GetByID", ctx, testUserID, int64(7)).
			Return(&clientDomain.Client{ID: 7, UserID: testUserID}, nil).
			Once()
		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		deps.appointmentRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Appointment) bool {
			notes, ok := deps.cipher.Decrypt(a.NotesEncrypted.EncryptedText, a.NotesEncrypted.IV, testUserID)
			return a.Status == domain.StatusScheduled && ok && notes == "bring previous exams"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Appointment).ID = 3
		}).Return(nil).Once()
		deps.outboxRepo.On("Create", ctx, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			var payload outboxDomain.AppointmentScheduledPayload
			if err := json.Unmarshal([]byte(e.Payload), &payload); err != nil {
				return false
			}
			return e.EventType == outboxDomain.EventTypeAppointmentScheduled &&
				payload.AppointmentID == 3 &&
				payload.ClientID == 7 &&
				payload.ScheduledAt.Equal(scheduledAt())
		})).Return(nil).Once()

		appointment, err := uc.Create(ctx, testUserID, input)

		require.NoError(t, err)
		assert.Equal(t, int64(3), appointment.ID)
		require.NotNil(t, appointment.Notes)
		assert.Equal(t, "bring previous exams", *appointment.Notes)
	})

	t.Run("Error_InvalidDuration", func(t *testing.T) {
		_, uc := newAppointmentTestDeps(t)

		_, err := uc.Create(ctx, testUserID, domain.AppointmentInput{ClientID: 7, DurationMinutes: 5})

		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})

	t.Run("Error_ClientOfAnotherUser", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.clientRepo.On("GetByID", ctx, testUserID, int64(7)).Return(nil, clientDomain.ErrClientNotFound).Once()

		_, err := uc.Create(ctx, testUserID, domain.AppointmentInput{ClientID: 7, DurationMinutes: 50})

		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
	})

	t.Run("Error_OutboxFails", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.clientRepo.On("GetByID", ctx, testUserID, int64(7)).Return(&clientDomain.Client{ID: 7}, nil).Once()
		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		deps.appointmentRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		deps.outboxRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		appointment, err := uc.Create(ctx, testUserID, domain.AppointmentInput{ClientID: 7, DurationMinutes: 50})

		assert.Nil(t, appointment)
		assert.ErrorContains(t, err, "failed to create outbox event")
	})
}

func TestAppointmentUseCase_GetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("Get_DecryptsNotes", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		notes, err := deps.cipher.Encrypt("first visit", testUserID)
		require.NoError(t, err)
		deps.appointmentRepo.On("GetByID", ctx, testUserID, int64(3)).
			Return(&domain.Appointment{ID: 3, UserID: testUserID, NotesEncrypted: notes}, nil).
			Once()

		appointment, err := uc.Get(ctx, testUserID, 3)

		require.NoError(t, err)
		assert.Equal(t, "first visit", *appointment.Notes)
	})

	t.Run("List_PassesFilter", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		from := scheduledAt()
		to := from.Add(7 * 24 * time.Hour)
		status := domain.StatusConfirmed
		filter := domain.ListFilter{From: &from, To: &to, Status: &status, Limit: 50}
		deps.appointmentRepo.On("List", ctx, testUserID, filter).
			Return([]*domain.Appointment{{ID: 1, UserID: testUserID}}, nil).
			Once()

		appointments, err := uc.List(ctx, testUserID, filter)

		require.NoError(t, err)
		assert.Len(t, appointments, 1)
		assert.Nil(t, appointments[0].Notes)
	})

	t.Run("List_InvalidWindow", func(t *testing.T) {
		_, uc := newAppointmentTestDeps(t)
		from := scheduledAt()
		to := from.Add(-time.Hour)

		_, err := uc.List(ctx, testUserID, domain.ListFilter{From: &from, To: &to})

		assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	})

	t.Run("List_InvalidStatus", func(t *testing.T) {
		_, uc := newAppointmentTestDeps(t)
		status := domain.Status("late")

		_, err := uc.List(ctx, testUserID, domain.ListFilter{Status: &status})

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestAppointmentUseCase_Update(t *testing.T) {
	ctx := context.Background()

	existing := func(status domain.Status) *domain.Appointment {
		return &domain.Appointment{
			ID:              3,
			UserID:          testUserID,
			ClientID:        7,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 50,
			Status:          status,
		}
	}

	t.Run("Success_Confirm", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.appointmentRepo.On("GetByID", ctx, testUserID, int64(3)).Return(existing(domain.StatusScheduled), nil).Once()
		deps.appointmentRepo.On("Update", ctx, mock.MatchedBy(func(a *domain.Appointment) bool {
			return a.Status == domain.StatusConfirmed && a.DurationMinutes == 60
		})).Return(nil).Once()

		appointment, err := uc.Update(ctx, testUserID, 3, domain.AppointmentInput{
			ClientID:        7,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, appointment.Status)
	})

	t.Run("Error_StatusChangeOnTerminal", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.appointmentRepo.On("GetByID", ctx, testUserID, int64(3)).Return(existing(domain.StatusCancelled), nil).Once()

		_, err := uc.Update(ctx, testUserID, 3, domain.AppointmentInput{
			ClientID:        7,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 50,
			Status:          domain.StatusScheduled,
		})

		assert.ErrorIs(t, err, domain.ErrTerminalStatus)
	})

	t.Run("Success_NotesEditableOnTerminal", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.appointmentRepo.On("GetByID", ctx, testUserID, int64(3)).Return(existing(domain.StatusCompleted), nil).Once()
		deps.appointmentRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		appointment, err := uc.Update(ctx, testUserID, 3, domain.AppointmentInput{
			ClientID:        7,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 50,
			Status:          domain.StatusCompleted,
			Notes:           strPtr("session went well"),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, appointment.Status)
		assert.Equal(t, "session went well", *appointment.Notes)
	})

	t.Run("Error_NewClientNotOwned", func(t *testing.T) {
		deps, uc := newAppointmentTestDeps(t)
		deps.appointmentRepo.On("GetByID", ctx, testUserID, int64(3)).Return(existing(domain.StatusScheduled), nil).Once()
		deps.clientRepo.On("GetByID", ctx, testUserID, int64(8)).Return(nil, clientDomain.ErrClientNotFound).Once()

		_, err := uc.Update(ctx, testUserID, 3, domain.AppointmentInput{
			ClientID:        8,
			ScheduledAt:     scheduledAt(),
			DurationMinutes: 50,
		})

		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
	})
}

func TestAppointmentUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	deps, uc := newAppointmentTestDeps(t)
	deps.appointmentRepo.On("Delete", ctx, testUserID, int64(3)).Return(domain.ErrAppointmentNotFound).Once()

	err := uc.Delete(ctx, testUserID, 3)

	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}
