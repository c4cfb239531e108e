package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// PostgreSQLClientRepository handles client persistence for PostgreSQL
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// NewPostgreSQLClientRepository creates a new PostgreSQL client repository.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}

// Create inserts a new client and sets its ID and timestamps
func (r *PostgreSQLClientRepository) Create(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO clients (user_id, name, email, phone, birth_date,
			  document_encrypted, document_iv, notes_encrypted, notes_iv, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		client.UserID, client.Name, client.Email, client.Phone, client.BirthDate,
		client.DocumentEncrypted.NullableText(), client.DocumentEncrypted.NullableIV(),
		client.NotesEncrypted.NullableText(), client.NotesEncrypted.NullableIV(),
		now, now,
	).Scan(&client.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrOwnerNotFound
		}
		return apperrors.Wrap(err, "failed to create client")
	}

	client.CreatedAt = now
	client.UpdatedAt = now
	return nil
}

// GetByID retrieves a client of userID by ID
func (r *PostgreSQLClientRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`

	return getClient(querier.QueryRowContext(ctx, query, id, userID))
}

// List retrieves the clients of userID ordered by ID
func (r *PostgreSQLClientRepository) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`

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
func (r *PostgreSQLClientRepository) Update(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE clients SET name = $1, email = $2, phone = $3, birth_date = $4,
			  document_encrypted = $5, document_iv = $6, notes_encrypted = $7, notes_iv = $8, updated_at = $9
			  WHERE id = $10 AND user_id = $11`

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
func (r *PostgreSQLClientRepository) Delete(ctx context.Context, userID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}
	return checkRowsAffected(result)
}
