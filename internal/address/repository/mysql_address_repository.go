package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// MySQLAddressRepository handles address persistence for MySQL
type MySQLAddressRepository struct {
	db *sql.DB
}

// NewMySQLAddressRepository creates a new MySQL address repository.
func NewMySQLAddressRepository(db *sql.DB) *MySQLAddressRepository {
	return &MySQLAddressRepository{db: db}
}

// Create inserts a new address and sets its ID and timestamps
func (r *MySQLAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO addresses (client_id, street_encrypted, street_iv, number, complement, district,
			  city, state, zip_code, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		address.ClientID, address.StreetEncrypted.EncryptedText, address.StreetEncrypted.IV,
		address.Number, address.Complement, address.District, address.City, address.State, address.ZipCode,
		now, now,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create address")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read address id")
	}

	address.ID = id
	address.CreatedAt = now
	address.UpdatedAt = now
	return nil
}

// GetByID retrieves an address of a client by ID
func (r *MySQLAddressRepository) GetByID(ctx context.Context, clientID, id int64) (*domain.Address, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = ? AND client_id = ?`

	return getAddress(querier.QueryRowContext(ctx, query, id, clientID))
}

// ListByClient retrieves every address of a client ordered by ID
func (r *MySQLAddressRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Address, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE client_id = ? ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list addresses")
	}
	return scanAddresses(rows)
}

// Update persists the address fields
func (r *MySQLAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE addresses SET street_encrypted = ?, street_iv = ?, number = ?, complement = ?,
			  district = ?, city = ?, state = ?, zip_code = ?, updated_at = ?
			  WHERE id = ? AND client_id = ?`

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
func (r *MySQLAddressRepository) Delete(ctx context.Context, clientID, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM addresses WHERE id = ? AND client_id = ?`, id, clientID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete address")
	}
	return checkRowsAffected(result)
}
