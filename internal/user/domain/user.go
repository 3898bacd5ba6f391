// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/errors"
)

// User represents an account of the music catalog.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	AvatarURL    *string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserInput contains the fields accepted when an admin creates a user.
type CreateUserInput struct {
	Username  string
	Password  string
	AvatarURL *string
	IsAdmin   bool
}

// UpdateUserInput contains the profile fields a user may change. Nil fields are left untouched.
type UpdateUserInput struct {
	Username  *string
	AvatarURL *string
}

// Apply copies the non-nil fields of the input onto the user.
func (in *UpdateUserInput) Apply(user *User) {
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.AvatarURL != nil {
		user.AvatarURL = in.AvatarURL
	}
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUsernameTaken indicates a user with the same username already exists.
	ErrUsernameTaken = errors.NewPublic(errors.ErrConflict, "Username already exists")
)
