// Package repository provides data persistence implementations for client entities.
// Sensitive fields are stored as encrypted text and IV column pairs.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	cryptoDomain "github.com/jo4ovms/psychology-project/internal/crypto/domain"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

const clientColumns = `id, user_id, name, email, phone, birth_date,
	document_encrypted, document_iv, notes_encrypted, notes_iv, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	var documentText, documentIV, notesText, notesIV *string

	err := row.Scan(&client.ID, &client.UserID, &client.Name, &client.Email, &client.Phone, &client.BirthDate,
		&documentText, &documentIV, &notesText, &notesIV, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	client.DocumentEncrypted = cryptoDomain.FieldFromNullable(documentText, documentIV)
	client.NotesEncrypted = cryptoDomain.FieldFromNullable(notesText, notesIV)
	return &client, nil
}

func scanClients(rows *sql.Rows) ([]*domain.Client, error) {
	defer rows.Close() //nolint:errcheck

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func getClient(row rowScanner) (*domain.Client, error) {
	client, err := scanClient(row)
	if err != nil {
		if apperrors.Is(err, domain.ErrClientNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}
	return client, nil
}

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
