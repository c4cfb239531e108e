package dto

import (
	"time"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
)

// AddressResponse represents an address in API responses. Street is null when it
// cannot be decrypted.
type AddressResponse struct {
	ID         int64     `json:"id"`
	ClientID   int64     `json:"client_id"`
	Street     *string   `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListAddressesResponse represents the addresses of a client in API responses.
type ListAddressesResponse struct {
	Data []AddressResponse `json:"data"`
}

// MapAddressToResponse converts a domain address to an API response.
func MapAddressToResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		ClientID:   address.ClientID,
		Street:     address.Street,
		Number:     address.Number,
		Complement: address.Complement,
		District:   address.District,
		City:       address.City,
		State:      address.State,
		ZipCode:    address.ZipCode,
		CreatedAt:  address.CreatedAt,
		UpdatedAt:  address.UpdatedAt,
	}
}

// MapAddressesToListResponse converts a slice of domain addresses to a list response.
func MapAddressesToListResponse(addresses []*domain.Address) ListAddressesResponse {
	data := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		data = append(data, MapAddressToResponse(address))
	}
	return ListAddressesResponse{Data: data}
}
