// Package dto provides data transfer objects for the address HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

// AddressRequest represents the API request for creating or replacing an address.
type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// Validate validates the AddressRequest.
func (r *AddressRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Street,
			validation.Required.Error("street is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("street must be between 1 and 255 characters"),
		),
		validation.Field(&r.Number, validation.Length(0, 20)),
		validation.Field(&r.Complement, validation.Length(0, 100)),
		validation.Field(&r.District, validation.Length(0, 100)),
		validation.Field(&r.City,
			validation.Required.Error("city is required"),
			appValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.State,
			validation.Required.Error("state is required"),
			appValidation.NoWhitespace,
			validation.Length(2, 2).Error("state must be a 2-letter code"),
		),
		validation.Field(&r.ZipCode,
			validation.Required.Error("zip_code is required"),
			appValidation.NoWhitespace,
			validation.Length(1, 20),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *AddressRequest) ToInput() domain.AddressInput {
	return domain.AddressInput{
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
	}
}
