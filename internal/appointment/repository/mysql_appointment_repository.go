package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// MySQLAppointmentRepository handles appointment persistence for MySQL
type MySQLAppointmentRepository struct {
	db *sql.DB
}

// NewMySQLAppointmentRepository creates a new MySQL appointment repository.
func NewMySQLAppointmentRepository(db *sql.DB) *MySQLAppointmentRepository {
	return &MySQLAppointmentRepository{db: db}
}

func mysqlPlaceholder(int) string {
	return "?"
}

// Create inserts a new appointment and sets its ID and timestamps
func (r *MySQLAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO appointments (user_id, client_id, scheduled_at, duration_minutes, status,
			  notes_encrypted, notes_iv, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		appointment.UserID, appointment.ClientID, appointment.ScheduledAt, appointment.DurationMinutes,
		string(appointment.Status),
		appointment.NotesEncrypted.NullableText(), appointment.NotesEncrypted.NullableIV(),
		now, now,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return clientDomain.ErrClientNotFound
		}
		return apperrors.Wrap(err, "failed to create appointment")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read appointment id")
	}

	appointment.ID = id
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	return nil
}

// GetByID retrieves an appointment of userID by ID
func (r *MySQLAppointmentRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ? AND user_id = ?`

	return getAppointment(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the appointments of userID matching filter
func (r *MySQLAppointmentRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	querier := database.GetTx(ctx, r.db)

	query, args := buildListQuery(userID, filter, mysqlPlaceholder)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list appointments")
	}
	return scanAppointments(rows)
}

// Update persists the appointment fields
func (r *MySQLAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE appointments SET client_id = ?, scheduled_at = ?, duration_minutes = ?, status = ?,
			  notes_encrypted = ?, notes_iv = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

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
func (r *MySQLAppointmentRepository) UpdateStatus(ctx context.Context, userID, id int64, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE appointments SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, string(status), time.Now().UTC(), id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update appointment status")
	}
	return checkRowsAffected(result)
}

// Delete removes an appointment of userID
func (r *MySQLAppointmentRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM appointments WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete appointment")
	}
	return checkRowsAffected(result)
}
