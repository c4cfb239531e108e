package repository

import (
	"context"
	"database/sql"
	"time"

	clientDomain "github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// MySQLConsultationRepository handles consultation persistence for MySQL
type MySQLConsultationRepository struct {
	db *sql.DB
}

// NewMySQLConsultationRepository creates a new MySQL consultation repository.
func NewMySQLConsultationRepository(db *sql.DB) *MySQLConsultationRepository {
	return &MySQLConsultationRepository{db: db}
}

// Create inserts a new consultation and sets its ID and timestamps
func (r *MySQLConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO consultations (user_id, client_id, appointment_id, session_date,
			  summary_encrypted, summary_iv, observations_encrypted, observations_iv, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		consultation.UserID, consultation.ClientID, consultation.AppointmentID, consultation.SessionDate,
		consultation.SummaryEncrypted.EncryptedText, consultation.SummaryEncrypted.IV,
		consultation.ObservationsEncrypted.NullableText(), consultation.ObservationsEncrypted.NullableIV(),
		now, now,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return clientDomain.ErrClientNotFound
		}
		return apperrors.Wrap(err, "failed to create consultation")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read consultation id")
	}

	consultation.ID = id
	consultation.CreatedAt = now
	consultation.UpdatedAt = now
	return nil
}

// GetByID retrieves a consultation of userID by ID
func (r *MySQLConsultationRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Consultation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = ? AND user_id = ?`

	return getConsultation(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the consultations of userID, optionally narrowed to one client
func (r *MySQLConsultationRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + consultationColumns + ` FROM consultations
			  WHERE user_id = ? AND (? IS NULL OR client_id = ?)
			  ORDER BY session_date DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query,
		userID, filter.ClientID, filter.ClientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list consultations")
	}
	return scanConsultations(rows)
}

// Update persists the consultation fields
func (r *MySQLConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE consultations SET client_id = ?, appointment_id = ?, session_date = ?,
			  summary_encrypted = ?, summary_iv = ?, observations_encrypted = ?, observations_iv = ?,
			  updated_at = ?
			  WHERE id = ? AND user_id = ?`

	_, err := querier.ExecContext(ctx, query,
		consultation.ClientID, consultation.AppointmentID, consultation.SessionDate,
		consultation.SummaryEncrypted.EncryptedText, consultation.SummaryEncrypted.IV,
		consultation.ObservationsEncrypted.NullableText(), consultation.ObservationsEncrypted.NullableIV(),
		now, consultation.ID, consultation.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update consultation")
	}

	consultation.UpdatedAt = now
	return nil
}

// Delete removes a consultation of userID
func (r *MySQLConsultationRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM consultations WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete consultation")
	}
	return checkRowsAffected(result)
}
