package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	databaseMocks "github.com/jo4ovms/psychology-project/internal/database/mocks"
	"github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepository) ClaimPending(
	ctx context.Context,
	limit int,
	retryBefore time.Time,
) ([]*domain.OutboxEvent, error) {
	args := m.Called(ctx, limit, retryBefore)
	events, _ := args.Get(0).([]*domain.OutboxEvent)
	return events, args.Error(1)
}

func (m *mockEventRepository) Save(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockEventProcessor struct {
	mock.Mock
}

func (m *mockEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

var testConfig = Config{
	Interval:      10 * time.Millisecond,
	BatchSize:     10,
	MaxRetries:    3,
	RetryInterval: time.Minute,
}

type workerDeps struct {
	txManager *databaseMocks.MockTxManager
	repo      *mockEventRepository
	processor *mockEventProcessor
}

func newWorker(t *testing.T) (*OutboxUseCase, workerDeps) {
	t.Helper()
	deps := workerDeps{
		txManager: databaseMocks.NewMockTxManager(t),
		repo:      &mockEventRepository{},
		processor: &mockEventProcessor{},
	}
	t.Cleanup(func() {
		deps.repo.AssertExpectations(t)
		deps.processor.AssertExpectations(t)
	})

	uc := NewOutboxUseCase(testConfig, deps.txManager, deps.repo, deps.processor, nil)
	return uc, deps
}

func pendingEvent(t *testing.T, retries int) *domain.OutboxEvent {
	t.Helper()
	event, err := domain.NewOutboxEvent(domain.EventTypeUserCreated, domain.UserCreatedPayload{UserID: 1})
	require.NoError(t, err)
	event.Retries = retries
	return event
}

func TestOutboxUseCase_ProcessEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivered", func(t *testing.T) {
		uc, deps := newWorker(t)
		fixed := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }
		events := []*domain.OutboxEvent{pendingEvent(t, 0), pendingEvent(t, 1)}

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, fixed.Add(-testConfig.RetryInterval)).Return(events, nil)
		deps.processor.On("Process", ctx, mock.Anything).Return(nil).Twice()
		deps.repo.On("Save", ctx, mock.Anything).Return(nil).Twice()

		require.NoError(t, uc.ProcessEvents(ctx))
		for _, event := range events {
			assert.Equal(t, domain.OutboxEventStatusProcessed, event.Status)
			require.NotNil(t, event.ProcessedAt)
			assert.Equal(t, fixed, *event.ProcessedAt)
			assert.Equal(t, fixed, event.UpdatedAt)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		uc, deps := newWorker(t)

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, mock.Anything).Return([]*domain.OutboxEvent{}, nil)

		assert.NoError(t, uc.ProcessEvents(ctx))
	})

	t.Run("ClaimError", func(t *testing.T) {
		uc, deps := newWorker(t)
		claimErr := errors.New("lock timeout")

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, mock.Anything).Return(nil, claimErr)

		assert.ErrorIs(t, uc.ProcessEvents(ctx), claimErr)
	})

	t.Run("TransactionError", func(t *testing.T) {
		uc, deps := newWorker(t)
		txErr := errors.New("failed to begin transaction")

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(txErr)

		assert.ErrorIs(t, uc.ProcessEvents(ctx), txErr)
	})

	t.Run("FailureIsRetried", func(t *testing.T) {
		uc, deps := newWorker(t)
		attempt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return attempt }
		event := pendingEvent(t, 0)

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, mock.Anything).Return([]*domain.OutboxEvent{event}, nil)
		deps.processor.On("Process", ctx, event).Return(errors.New("smtp down"))
		deps.repo.On("Save", ctx, event).Return(nil)

		require.NoError(t, uc.ProcessEvents(ctx))
		assert.Equal(t, domain.OutboxEventStatusPending, event.Status)
		assert.Equal(t, 1, event.Retries)
		require.NotNil(t, event.LastError)
		assert.Equal(t, "smtp down", *event.LastError)
		assert.Equal(t, attempt, event.UpdatedAt)
	})

	t.Run("FailureExhaustsRetries", func(t *testing.T) {
		uc, deps := newWorker(t)
		event := pendingEvent(t, testConfig.MaxRetries-1)

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, mock.Anything).Return([]*domain.OutboxEvent{event}, nil)
		deps.processor.On("Process", ctx, event).Return(errors.New("smtp down"))
		deps.repo.On("Save", ctx, event).Return(nil)

		require.NoError(t, uc.ProcessEvents(ctx))
		assert.Equal(t, domain.OutboxEventStatusFailed, event.Status)
		assert.Equal(t, testConfig.MaxRetries, event.Retries)
	})

	t.Run("SaveErrorAbortsBatch", func(t *testing.T) {
		uc, deps := newWorker(t)
		first, second := pendingEvent(t, 0), pendingEvent(t, 0)
		saveErr := errors.New("connection reset")

		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", ctx, testConfig.BatchSize, mock.Anything).
			Return([]*domain.OutboxEvent{first, second}, nil)
		deps.processor.On("Process", ctx, first).Return(nil)
		deps.repo.On("Save", ctx, first).Return(saveErr)

		assert.ErrorIs(t, uc.ProcessEvents(ctx), saveErr)
		deps.processor.AssertNotCalled(t, "Process", ctx, second)
	})
}

func TestOutboxUseCase_Start(t *testing.T) {
	t.Run("CancelledContext", func(t *testing.T) {
		uc, _ := newWorker(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, uc.Start(ctx), context.Canceled)
	})

	t.Run("PollsUntilCancelled", func(t *testing.T) {
		uc, deps := newWorker(t)
		ctx, cancel := context.WithCancel(context.Background())
		polled := make(chan struct{}, 1)

		deps.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		deps.repo.On("ClaimPending", mock.Anything, testConfig.BatchSize, mock.Anything).
			Run(func(mock.Arguments) {
				select {
				case polled <- struct{}{}:
				default:
				}
			}).
			Return([]*domain.OutboxEvent{}, nil)

		done := make(chan error, 1)
		go func() { done <- uc.Start(ctx) }()

		select {
		case <-polled:
		case <-time.After(time.Second):
			t.Fatal("worker did not poll")
		}

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})
}

func TestLoggingEventProcessor(t *testing.T) {
	var buf bytes.Buffer
	processor := NewLoggingEventProcessor(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	t.Run("UserCreated", func(t *testing.T) {
		buf.Reset()
		event, err := domain.NewOutboxEvent(domain.EventTypeUserCreated, domain.UserCreatedPayload{
			UserID: 7, Email: "ana@example.com", Role: "psychologist",
		})
		require.NoError(t, err)

		require.NoError(t, processor.Process(ctx, event))
		assert.Contains(t, buf.String(), `"msg":"user created"`)
		assert.Contains(t, buf.String(), `"user_id":7`)
		assert.NotContains(t, buf.String(), "ana@example.com")
	})

	t.Run("AppointmentScheduled", func(t *testing.T) {
		buf.Reset()
		event, err := domain.NewOutboxEvent(domain.EventTypeAppointmentScheduled, domain.AppointmentScheduledPayload{
			AppointmentID: 1, UserID: 2, ClientID: 3, ScheduledAt: time.Now().UTC(), DurationMinutes: 50,
		})
		require.NoError(t, err)

		require.NoError(t, processor.Process(ctx, event))
		assert.Contains(t, buf.String(), `"appointment_id":1`)
		assert.Contains(t, buf.String(), `"duration_minutes":50`)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		event := &domain.OutboxEvent{
			ID:        uuid.Must(uuid.NewV7()),
			EventType: domain.EventTypeAppointmentScheduled,
			Payload:   `{"appointment_id": "not a number"}`,
		}

		assert.ErrorContains(t, processor.Process(ctx, event), "failed to decode domain.AppointmentScheduledPayload")
	})

	t.Run("UnknownTypeIsAcknowledged", func(t *testing.T) {
		buf.Reset()
		event := &domain.OutboxEvent{ID: uuid.Must(uuid.NewV7()), EventType: "client.archived", Payload: `{}`}

		require.NoError(t, processor.Process(ctx, event))
		assert.Contains(t, buf.String(), "unknown outbox event type")
	})
}
