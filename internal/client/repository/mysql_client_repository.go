package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// MySQLClientRepository handles client persistence for MySQL
type MySQLClientRepository struct {
	db *sql.DB
}

// NewMySQLClientRepository creates a new MySQL client repository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

// Create inserts a new client and sets its ID and timestamps
func (r *MySQLClientRepository) Create(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO clients (user_id, name, email, phone, birth_date,
			  document_encrypted, document_iv, notes_encrypted, notes_iv, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		client.UserID, client.Name, client.Email, client.Phone, client.BirthDate,
		client.DocumentEncrypted.NullableText(), client.DocumentEncrypted.NullableIV(),
		client.NotesEncrypted.NullableText(), client.NotesEncrypted.NullableIV(),
		now, now,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrOwnerNotFound
		}
		return apperrors.Wrap(err, "failed to create client")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read client id")
	}

	client.ID = id
	client.CreatedAt = now
	client.UpdatedAt = now
	return nil
}

// GetByID retrieves a client of userID by ID
func (r *MySQLClientRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ? AND user_id = ?`

	return getClient(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the clients of userID ordered by ID
func (r *MySQLClientRepository) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = ? ORDER BY id ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}

	clients, err := scanClients(rows)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan clients")
	}
	return clients, nil
}

// Update persists the client fields
func (r *MySQLClientRepository) Update(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE clients SET name = ?, email = ?, phone = ?, birth_date = ?,
			  document_encrypted = ?, document_iv = ?, notes_encrypted = ?, notes_iv = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

	_, err := querier.ExecContext(ctx, query,
		client.Name, client.Email, client.Phone, client.BirthDate,
		client.DocumentEncrypted.NullableText(), client.DocumentEncrypted.NullableIV(),
		client.NotesEncrypted.NullableText(), client.NotesEncrypted.NullableIV(),
		now, client.ID, client.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}

	client.UpdatedAt = now
	return nil
}

// Delete removes a client of userID
func (r *MySQLClientRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM clients WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}
	return checkRowsAffected(result)
}
