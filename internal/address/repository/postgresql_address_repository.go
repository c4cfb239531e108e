package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// PostgreSQLAddressRepository handles address persistence for PostgreSQL
type PostgreSQLAddressRepository struct {
	db *sql.DB
}

// NewPostgreSQLAddressRepository creates a new PostgreSQL address repository.
func NewPostgreSQLAddressRepository(db *sql.DB) *PostgreSQLAddressRepository {
	return &PostgreSQLAddressRepository{db: db}
}

// Create inserts a new address and sets its ID and timestamps
func (r *PostgreSQLAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO addresses (client_id, street_encrypted, street_iv, number, complement, district,
			  city, state, zip_code, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		address.ClientID, address.StreetEncrypted.EncryptedText, address.StreetEncrypted.IV,
		address.Number, address.Complement, address.District, address.City, address.State, address.ZipCode,
		now, now,
	).Scan(&address.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create address")
	}

	address.CreatedAt = now
	address.UpdatedAt = now
	return nil
}

// GetByID retrieves an address of a client by ID
func (r *PostgreSQLAddressRepository) GetByID(ctx context.Context, clientID, id int64) (*domain.Address, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND client_id = $2`

	return getAddress(querier.QueryRowContext(ctx, query, id, clientID))
}

// ListByClient retrieves every address of a client ordered by ID
func (r *PostgreSQLAddressRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Address, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE client_id = $1 ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list addresses")
	}
	return scanAddresses(rows)
}

// Update persists the address fields
func (r *PostgreSQLAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE addresses SET street_encrypted = $1, street_iv = $2, number = $3, complement = $4,
			  district = $5, city = $6, state = $7, zip_code = $8, updated_at = $9
			  WHERE id = $10 AND client_id = $11`

	_, err := querier.ExecContext(ctx, query,
		address.StreetEncrypted.EncryptedText, address.StreetEncrypted.IV,
		address.Number, address.Complement, address.District, address.City, address.State, address.ZipCode,
		now, address.ID, address.ClientID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update address")
	}

	address.UpdatedAt = now
	return nil
}

// Delete removes an address of a client
func (r *PostgreSQLAddressRepository) Delete(ctx context.Context, clientID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete address")
	}
	return checkRowsAffected(result)
}
