// Package dto provides data transfer objects for user endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	userDomain "github.com/allisson/echo/internal/user/domain"
	customValidation "github.com/allisson/echo/internal/validation"
)

// CreateUserRequest contains the fields for POST /users.
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"` //nolint:gosec // request field, never logged
	AvatarURL *string `json:"avatar_url"`
	IsAdmin   bool    `json:"is_admin"`
}

// Validate checks the username format, password policy and avatar URL.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(3, 50),
			customValidation.Username,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(0, 1024),
			customValidation.DefaultPassword,
		),
		validation.Field(&r.AvatarURL,
			validation.NilOrNotEmpty,
			customValidation.HTTPURL,
		),
	)
}

// ToDomain converts the request to a use case input.
func (r *CreateUserRequest) ToDomain() *userDomain.CreateUserInput {
	return &userDomain.CreateUserInput{
		Username:  r.Username,
		Password:  r.Password,
		AvatarURL: r.AvatarURL,
		IsAdmin:   r.IsAdmin,
	}
}

// UpdateUserRequest contains the profile fields for PATCH /users/{user_id}.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

// Validate checks the fields that are present.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty,
			validation.Length(3, 50),
			customValidation.Username,
		),
		validation.Field(&r.AvatarURL,
			validation.NilOrNotEmpty,
			customValidation.HTTPURL,
		),
	)
}

// ToDomain converts the request to a use case input.
func (r *UpdateUserRequest) ToDomain() *userDomain.UpdateUserInput {
	return &userDomain.UpdateUserInput{
		Username:  r.Username,
		AvatarURL: r.AvatarURL,
	}
}
