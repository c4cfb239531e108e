// Package usecase runs the outbox worker that delivers pending events.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jo4ovms/psychology-project/internal/database"
	"github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

// Config controls polling. An event is retried at most MaxRetries times, no sooner
// than RetryInterval after its previous attempt.
type Config struct {
	Interval      time.Duration
	BatchSize     int
	MaxRetries    int
	RetryInterval time.Duration
}

// OutboxEventRepository is the persistence the worker and the producing use cases
// need.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	ClaimPending(ctx context.Context, limit int, retryBefore time.Time) ([]*domain.OutboxEvent, error)
	Save(ctx context.Context, event *domain.OutboxEvent) error
}

// EventProcessor delivers a single event. A returned error counts as a failed attempt.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// OutboxUseCase polls outbox_events and hands each claimed event to an EventProcessor.
type OutboxUseCase struct {
	config    Config
	txManager database.TxManager
	repo      OutboxEventRepository
	processor EventProcessor
	logger    *slog.Logger
	now       func() time.Time
}

func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	repo OutboxEventRepository,
	processor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OutboxUseCase{
		config:    config,
		txManager: txManager,
		repo:      repo,
		processor: processor,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start processes a batch every Interval until ctx is done and returns ctx.Err().
// Batch errors are logged and do not stop the loop.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	uc.logger.Info("outbox worker started",
		slog.Duration("interval", uc.config.Interval),
		slog.Int("batch_size", uc.config.BatchSize),
		slog.Int("max_retries", uc.config.MaxRetries),
	)

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("outbox worker stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil && ctx.Err() == nil {
				uc.logger.Error("outbox batch failed", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents claims one batch and records the outcome of every event in the same
// transaction, so claimed rows stay locked until their new state is written.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.repo.ClaimPending(ctx, uc.config.BatchSize, uc.now().Add(-uc.config.RetryInterval))
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		var delivered, failed int
		for _, event := range events {
			if err := uc.processor.Process(ctx, event); err != nil {
				failed++
				event.RecordFailure(err, uc.config.MaxRetries, uc.now())
				uc.logger.Warn("outbox event failed",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", event.EventType),
					slog.Int("retries", event.Retries),
					slog.String("status", string(event.Status)),
					slog.Any("error", err),
				)
			} else {
				delivered++
				event.MarkProcessed(uc.now())
			}

			if err := uc.repo.Save(ctx, event); err != nil {
				return err
			}
		}

		uc.logger.Debug("outbox batch processed",
			slog.Int("delivered", delivered),
			slog.Int("failed", failed),
		)
		return nil
	})
}
