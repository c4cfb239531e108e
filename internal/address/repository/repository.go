// Package repository provides data persistence implementations for address entities.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

const addressColumns = `id, client_id, street_encrypted, street_iv, number, complement, district,
	city, state, zip_code, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var address domain.Address
	err := row.Scan(&address.ID, &address.ClientID,
		&address.StreetEncrypted.EncryptedText, &address.StreetEncrypted.IV,
		&address.Number, &address.Complement, &address.District, &address.City, &address.State,
		&address.ZipCode, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func getAddress(row rowScanner) (*domain.Address, error) {
	address, err := scanAddress(row)
	if err != nil {
		if apperrors.Is(err, domain.ErrAddressNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to get address")
	}
	return address, nil
}

func scanAddresses(rows *sql.Rows) ([]*domain.Address, error) {
	defer rows.Close() //nolint:errcheck

	addresses := make([]*domain.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan address")
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate addresses")
	}
	return addresses, nil
}

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
