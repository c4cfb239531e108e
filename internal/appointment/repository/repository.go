// Package repository provides data persistence implementations for appointment entities.
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

const appointmentColumns = `id, user_id, client_id, scheduled_at, duration_minutes, status,
	notes_encrypted, notes_iv, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var status string
	var notesText, notesIV *string

	err := row.Scan(&appointment.ID, &appointment.UserID, &appointment.ClientID, &appointment.ScheduledAt,
		&appointment.DurationMinutes, &status, &notesText, &notesIV, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}

	appointment.Status = domain.Status(status)
	appointment.NotesEncrypted = cryptoDomain.FieldFromNullable(notesText, notesIV)
	return &appointment, nil
}

func getAppointment(row rowScanner) (*domain.Appointment, error) {
	appointment, err := scanAppointment(row)
	if err != nil {
		if apperrors.Is(err, domain.ErrAppointmentNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to get appointment")
	}
	return appointment, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	defer rows.Close() //nolint:errcheck

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan appointment")
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate appointments")
	}
	return appointments, nil
}

// buildListQuery renders the filtered listing query. placeholder returns the bind
// marker for the n-th argument (1-based).
func buildListQuery(userID int64, filter domain.ListFilter, placeholder func(n int) string) (string, []any) {
	args := []any{userID}
	conditions := []string{"user_id = " + placeholder(1)}

	add := func(column, op string, value any) {
		args = append(args, value)
		conditions = append(conditions, column+" "+op+" "+placeholder(len(args)))
	}

	if filter.ClientID != nil {
		add("client_id", "=", *filter.ClientID)
	}
	if filter.Status != nil {
		add("status", "=", string(*filter.Status))
	}
	if filter.From != nil {
		add("scheduled_at", ">=", filter.From.UTC())
	}
	if filter.To != nil {
		add("scheduled_at", "<=", filter.To.UTC())
	}

	args = append(args, filter.Limit)
	limit := placeholder(len(args))
	args = append(args, filter.Offset)
	offset := placeholder(len(args))

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE ` +
		strings.Join(conditions, " AND ") +
		` ORDER BY scheduled_at ASC, id ASC LIMIT ` + limit + ` OFFSET ` + offset
	return query, args
}

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}
