package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// PostgreSQLAppointmentRepository handles appointment persistence for PostgreSQL
type PostgreSQLAppointmentRepository struct {
	db *sql.DB
}

// NewPostgreSQLAppointmentRepository creates a new PostgreSQL appointment repository.
func NewPostgreSQLAppointmentRepository(db *sql.DB) *PostgreSQLAppointmentRepository {
	return &PostgreSQLAppointmentRepository{db: db}
}

func pgPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// Create inserts a new appointment and sets its ID and timestamps
func (r *PostgreSQLAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO appointments (user_id, client_id, scheduled_at, duration_minutes, status,
			  notes_encrypted, notes_iv, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		appointment.UserID, appointment.ClientID, appointment.ScheduledAt, appointment.DurationMinutes,
		string(appointment.Status),
		appointment.NotesEncrypted.NullableText(), appointment.NotesEncrypted.NullableIV(),
		now, now,
	).Scan(&appointment.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return clientDomain.ErrClientNotFound
		}
		return apperrors.Wrap(err, "failed to create appointment")
	}

	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	return nil
}

// GetByID retrieves an appointment of userID by ID
func (r *PostgreSQLAppointmentRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1 AND user_id = $2`

	return getAppointment(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the appointments of userID matching filter
func (r *PostgreSQLAppointmentRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	querier := database.GetTx(ctx, r.db)

	query, args := buildListQuery(userID, filter, pgPlaceholder)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list appointments")
	}
	return scanAppointments(rows)
}

// Update persists the appointment fields
func (r *PostgreSQLAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE appointments SET client_id = $1, scheduled_at = $2, duration_minutes = $3, status = $4,
			  notes_encrypted = $5, notes_iv = $6, updated_at = $7
			  WHERE id = $8 AND user_id = $9`

	_, err := querier.ExecContext(ctx, query,
		appointment.ClientID, appointment.ScheduledAt, appointment.DurationMinutes, string(appointment.Status),
		appointment.NotesEncrypted.NullableText(), appointment.NotesEncrypted.NullableIV(),
		now, appointment.ID, appointment.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update appointment")
	}

	appointment.UpdatedAt = now
	return nil
}

// UpdateStatus sets the status of an appointment of userID
func (r *PostgreSQLAppointmentRepository) UpdateStatus(
	ctx context.Context,
	userID, id int64,
	status domain.Status,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := querier.ExecContext(ctx, query, string(status), time.Now().UTC(), id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update appointment status")
	}
	return checkRowsAffected(result)
}

// Delete removes an appointment of userID
func (r *PostgreSQLAppointmentRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete appointment")
	}
	return checkRowsAffected(result)
}
