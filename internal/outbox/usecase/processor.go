package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

type eventHandler func(ctx context.Context, payload []byte) error

// LoggingEventProcessor decodes the known payloads and writes one structured log line
// per event. It stands in for a real delivery target such as a notification service.
type LoggingEventProcessor struct {
	logger   *slog.Logger
	handlers map[string]eventHandler
}

func NewLoggingEventProcessor(logger *slog.Logger) *LoggingEventProcessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &LoggingEventProcessor{logger: logger}
	p.handlers = map[string]eventHandler{
		domain.EventTypeUserCreated: decodeThen(func(ctx context.Context, e domain.UserCreatedPayload) {
			p.logger.InfoContext(ctx, "user created",
				slog.Int64("user_id", e.UserID),
				slog.String("role", e.Role),
			)
		}),
		domain.EventTypeAppointmentScheduled: decodeThen(func(ctx context.Context, e domain.AppointmentScheduledPayload) {
			p.logger.InfoContext(ctx, "appointment scheduled",
				slog.Int64("appointment_id", e.AppointmentID),
				slog.Int64("user_id", e.UserID),
				slog.Int64("client_id", e.ClientID),
				slog.Time("scheduled_at", e.ScheduledAt),
				slog.Int("duration_minutes", e.DurationMinutes),
			)
		}),
	}
	return p
}

// Process dispatches on the event type. Unknown types are acknowledged with a warning
// so they do not block the queue.
func (p *LoggingEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	handle, ok := p.handlers[event.EventType]
	if !ok {
		p.logger.WarnContext(ctx, "unknown outbox event type",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType),
		)
		return nil
	}
	return handle(ctx, []byte(event.Payload))
}

func decodeThen[T any](fn func(ctx context.Context, payload T)) eventHandler {
	return func(ctx context.Context, raw []byte) error {
		var payload T
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("failed to decode %T: %w", payload, err)
		}
		fn(ctx, payload)
		return nil
	}
}
