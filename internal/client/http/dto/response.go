package dto

import (
	"time"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

// ClientResponse represents a client in API responses. Document and Notes are null
// when not set or when they cannot be decrypted.
type ClientResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate *string   `json:"birth_date"`
	Document  *string   `json:"document"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListClientsResponse represents a paginated list of clients in API responses.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
}

// MapClientToResponse converts a domain client to an API response.
func MapClientToResponse(client *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:        client.ID,
		UserID:    client.UserID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Document:  client.Document,
		Notes:     client.Notes,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
	if client.BirthDate != nil {
		birthDate := client.BirthDate.Format(appValidation.DateLayout)
		resp.BirthDate = &birthDate
	}
	return resp
}

// MapClientsToListResponse converts a slice of domain clients to a list response.
func MapClientsToListResponse(clients []*domain.Client) ListClientsResponse {
	data := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		data = append(data, MapClientToResponse(client))
	}
	return ListClientsResponse{Data: data}
}
