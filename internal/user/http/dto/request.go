// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/jo4ovms/psychology-project/internal/user/domain"
	appValidation "github.com/jo4ovms/psychology-project/internal/validation"
)

var passwordStrength = appValidation.PasswordStrength{
	MinLength:      8,
	RequireUpper:   true,
	RequireLower:   true,
	RequireNumber:  true,
	RequireSpecial: true,
}

// RegisterUserRequest represents the API request for user registration.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate validates the RegisterUserRequest. An empty role defaults to psychologist.
func (r *RegisterUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			passwordStrength,
		),
		validation.Field(&r.Role,
			validation.In(string(domain.RolePsychologist), string(domain.RoleAdmin)).
				Error("role must be psychologist or admin"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *RegisterUserRequest) ToInput() domain.RegisterUserInput {
	return domain.RegisterUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// UpdateUserRequest represents the API request for updating a user. Password is
// optional; when omitted the current password is kept.
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Password *string `json:"password"`
}

// Validate validates the UpdateUserRequest.
func (r *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(string(domain.RolePsychologist), string(domain.RoleAdmin)).
				Error("role must be psychologist or admin"),
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty.Error("password must not be empty"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			passwordStrength,
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *UpdateUserRequest) ToInput() domain.UpdateUserInput {
	return domain.UpdateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     domain.Role(r.Role),
		Password: r.Password,
	}
}
