// Package dto provides data transfer objects for session endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	customValidation "github.com/allisson/echo/internal/validation"
)

// LoginRequest contains the credentials for POST /sessions.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request field, never logged
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}

// ToDomain converts the request to a use case input.
func (r *LoginRequest) ToDomain() *authDomain.LoginInput {
	return &authDomain.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
