// Package dto provides data transfer objects for the client HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

// ClientRequest represents the API request for creating or replacing a client.
// Document and Notes are encrypted before they are stored.
type ClientRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	BirthDate string  `json:"birth_date"`
	Document  *string `json:"document"`
	Notes     *string `json:"notes"`
}

// Validate validates the ClientRequest.
func (r *ClientRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			appValidation.Email,
			validation.Length(0, 255).Error("email must be at most 255 characters"),
		),
		validation.Field(&r.Phone, appValidation.Phone),
		validation.Field(&r.BirthDate, appValidation.DateOnly),
		validation.Field(&r.Document,
			validation.Length(0, 64).Error("document must be at most 64 characters"),
		),
		validation.Field(&r.Notes,
			validation.Length(0, 10000).Error("notes must be at most 10000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input. Validate must succeed first.
func (r *ClientRequest) ToInput() domain.ClientInput {
	input := domain.ClientInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
		Notes:    r.Notes,
	}
	if r.BirthDate != "" {
		if birthDate, err := time.Parse(appValidation.DateLayout, r.BirthDate); err == nil {
			input.BirthDate = &birthDate
		}
	}
	return input
}
