// Package repository provides data persistence implementations for consultation entities.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

const consultationColumns = `id, user_id, client_id, appointment_id, session_date,
	summary_encrypted, summary_iv, observations_encrypted, observations_iv, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*domain.Consultation, error) {
	var consultation domain.Consultation
	var summaryText, summaryIV, observationsText, observationsIV *string

	err := row.Scan(&consultation.ID, &consultation.UserID, &consultation.ClientID, &consultation.AppointmentID,
		&consultation.SessionDate, &summaryText, &summaryIV, &observationsText, &observationsIV,
		&consultation.CreatedAt, &consultation.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConsultationNotFound
		}
		return nil, err
	}

	consultation.SummaryEncrypted = cryptoDomain.FieldFromNullable(summaryText, summaryIV)
	consultation.ObservationsEncrypted = cryptoDomain.FieldFromNullable(observationsText, observationsIV)
	return &consultation, nil
}

func getConsultation(row rowScanner) (*domain.Consultation, error) {
	consultation, err := scanConsultation(row)
	if err != nil {
		if apperrors.Is(err, domain.ErrConsultationNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to get consultation")
	}
	return consultation, nil
}

func scanConsultations(rows *sql.Rows) ([]*domain.Consultation, error) {
	defer rows.Close() //nolint:errcheck

	consultations := make([]*domain.Consultation, 0)
	for rows.Next() {
		consultation, err := scanConsultation(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan consultation")
		}
		consultations = append(consultations, consultation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate consultations")
	}
	return consultations, nil
}

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrConsultationNotFound
	}
	return nil
}
