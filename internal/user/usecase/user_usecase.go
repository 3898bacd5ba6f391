package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authService "github.com/allisson/echo/internal/auth/service"
	"github.com/allisson/echo/internal/database"
	userDomain "github.com/allisson/echo/internal/user/domain"
)

type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// Create hashes the password and stores the new user.
func (u *userUseCase) Create(
	ctx context.Context,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	passwordHash, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     input.Username,
		PasswordHash: passwordHash,
		AvatarURL:    input.AvatarURL,
		IsAdmin:      input.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// Update reads the user, applies the non-nil input fields and writes it back in one transaction.
func (u *userUseCase) Update(
	ctx context.Context,
	userID uuid.UUID,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	var user *userDomain.User

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		input.Apply(user)
		user.UpdatedAt = time.Now().UTC()

		return u.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
