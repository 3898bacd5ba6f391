// Package usecase implements user account management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/allisson/echo/internal/user/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	Update(ctx context.Context, user *userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// UserUseCase defines user account operations.
type UserUseCase interface {
	// Create registers a new user with an argon2id password hash.
	// Returns ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, input *userDomain.CreateUserInput) (*userDomain.User, error)

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// Update changes the profile fields present in input and returns the updated user.
	Update(ctx context.Context, userID uuid.UUID, input *userDomain.UpdateUserInput) (*userDomain.User, error)
}
