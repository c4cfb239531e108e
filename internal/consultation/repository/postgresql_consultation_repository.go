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

// PostgreSQLConsultationRepository handles consultation persistence for PostgreSQL
type PostgreSQLConsultationRepository struct {
	db *sql.DB
}

// NewPostgreSQLConsultationRepository creates a new PostgreSQL consultation repository.
func NewPostgreSQLConsultationRepository(db *sql.DB) *PostgreSQLConsultationRepository {
	return &PostgreSQLConsultationRepository{db: db}
}

// Create inserts a new consultation and sets its ID and timestamps
func (r *PostgreSQLConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO consultations (user_id, client_id, appointment_id, session_date,
			  summary_encrypted, summary_iv, observations_encrypted, observations_iv, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		consultation.UserID, consultation.ClientID, consultation.AppointmentID, consultation.SessionDate,
		consultation.SummaryEncrypted.EncryptedText, consultation.SummaryEncrypted.IV,
		consultation.ObservationsEncrypted.NullableText(), consultation.ObservationsEncrypted.NullableIV(),
		now, now,
	).Scan(&consultation.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return clientDomain.ErrClientNotFound
		}
		return apperrors.Wrap(err, "failed to create consultation")
	}

	consultation.CreatedAt = now
	consultation.UpdatedAt = now
	return nil
}

// GetByID retrieves a consultation of userID by ID
func (r *PostgreSQLConsultationRepository) GetByID(
	ctx context.Context,
	userID, id int64,
) (*domain.Consultation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1 AND user_id = $2`

	return getConsultation(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the consultations of userID, optionally narrowed to one client
func (r *PostgreSQLConsultationRepository) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + consultationColumns + ` FROM consultations
			  WHERE user_id = $1 AND ($2::BIGINT IS NULL OR client_id = $2)
			  ORDER BY session_date DESC, id DESC LIMIT $3 OFFSET $4`

	rows, err := querier.QueryContext(ctx, query, userID, filter.ClientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list consultations")
	}
	return scanConsultations(rows)
}

// Update persists the consultation fields
func (r *PostgreSQLConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE consultations SET client_id = $1, appointment_id = $2, session_date = $3,
			  summary_encrypted = $4, summary_iv = $5, observations_encrypted = $6, observations_iv = $7,
			  updated_at = $8
			  WHERE id = $9 AND user_id = $10`

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
func (r *PostgreSQLConsultationRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM consultations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete consultation")
	}
	return checkRowsAffected(result)
}
