// Package repository stores outbox events in PostgreSQL or MySQL.
package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
	"github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

const eventColumns = "id, event_type, payload, status, retries, last_error, processed_at, created_at, updated_at"

// outboxQueries holds the dialect specific statements.
type outboxQueries struct {
	insert string
	claim  string
	save   string
}

// eventStore is shared by both dialects. idArg adapts the uuid column type: native
// UUID on PostgreSQL, BINARY(16) on MySQL.
type eventStore struct {
	db      *sql.DB
	queries outboxQueries
	idArg   func(id *uuid.UUID) any
}

// Create inserts event. It joins the transaction in ctx, so the event commits or
// rolls back together with the entity that produced it.
func (s *eventStore) Create(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, s.db)

	_, err := querier.ExecContext(ctx, s.queries.insert, s.idArg(&event.ID), event.EventType, event.Payload,
		event.Status, event.Retries, event.LastError, event.ProcessedAt, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}

// ClaimPending locks up to limit pending events, oldest first. Rows locked by another
// worker are skipped. Events that already failed are only claimed once their last
// attempt is older than retryBefore. Must run inside a transaction for the locks to
// be held until Save.
func (s *eventStore) ClaimPending(
	ctx context.Context,
	limit int,
	retryBefore time.Time,
) ([]*domain.OutboxEvent, error) {
	querier := database.GetTx(ctx, s.db)

	rows, err := querier.QueryContext(ctx, s.queries.claim, domain.OutboxEventStatusPending, retryBefore, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to claim pending outbox events")
	}
	defer rows.Close() //nolint:errcheck

	events := make([]*domain.OutboxEvent, 0, limit)
	for rows.Next() {
		event := &domain.OutboxEvent{}
		if err := rows.Scan(s.idArg(&event.ID), &event.EventType, &event.Payload, &event.Status,
			&event.Retries, &event.LastError, &event.ProcessedAt, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan outbox event")
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate outbox events")
	}

	return events, nil
}

// Save persists the delivery state of event. updated_at is written from the event, so
// the retry backoff in ClaimPending compares times taken from the same clock.
func (s *eventStore) Save(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, s.db)

	_, err := querier.ExecContext(ctx, s.queries.save, event.Status, event.Retries, event.LastError,
		event.ProcessedAt, event.UpdatedAt, s.idArg(&event.ID))
	if err != nil {
		return apperrors.Wrap(err, "failed to save outbox event")
	}
	return nil
}

// PostgreSQLOutboxEventRepository stores events in PostgreSQL.
type PostgreSQLOutboxEventRepository struct {
	eventStore
}

func NewPostgreSQLOutboxEventRepository(db *sql.DB) *PostgreSQLOutboxEventRepository {
	return &PostgreSQLOutboxEventRepository{eventStore{
		db: db,
		queries: outboxQueries{
			insert: `INSERT INTO outbox_events (` + eventColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			claim: `SELECT ` + eventColumns + ` FROM outbox_events
				WHERE status = $1 AND (retries = 0 OR updated_at <= $2)
				ORDER BY created_at ASC
				LIMIT $3
				FOR UPDATE SKIP LOCKED`,
			save: `UPDATE outbox_events
				SET status = $1, retries = $2, last_error = $3, processed_at = $4, updated_at = $5
				WHERE id = $6`,
		},
		idArg: func(id *uuid.UUID) any { return id },
	}}
}

// MySQLOutboxEventRepository stores events in MySQL, ids as BINARY(16).
type MySQLOutboxEventRepository struct {
	eventStore
}

func NewMySQLOutboxEventRepository(db *sql.DB) *MySQLOutboxEventRepository {
	return &MySQLOutboxEventRepository{eventStore{
		db: db,
		queries: outboxQueries{
			insert: `INSERT INTO outbox_events (` + eventColumns + `)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			claim: `SELECT ` + eventColumns + ` FROM outbox_events
				WHERE status = ? AND (retries = 0 OR updated_at <= ?)
				ORDER BY created_at ASC
				LIMIT ?
				FOR UPDATE SKIP LOCKED`,
			save: `UPDATE outbox_events
				SET status = ?, retries = ?, last_error = ?, processed_at = ?, updated_at = ?
				WHERE id = ?`,
		},
		idArg: func(id *uuid.UUID) any { return binaryUUID{id} },
	}}
}

// binaryUUID reads and writes a uuid as the 16 raw bytes MySQL stores.
type binaryUUID struct {
	id *uuid.UUID
}

func (b binaryUUID) Value() (driver.Value, error) {
	return b.id.MarshalBinary()
}

func (b binaryUUID) Scan(src any) error {
	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into binary uuid", src)
	}
	return b.id.UnmarshalBinary(raw)
}
