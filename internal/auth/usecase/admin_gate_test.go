package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	apperrors "github.com/allisson/echo/internal/errors"
	userDomain "github.com/allisson/echo/internal/user/domain"
)

func TestAdminGate_RequireAdmin(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name      string
		isAdmin   bool
		lookupErr error
		check     func(t *testing.T, err error)
	}{
		{
			name:    "Success_Admin",
			isAdmin: true,
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Error_NotAdminIsForbidden",
			isAdmin: false,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, authDomain.ErrAdminRequired)
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			},
		},
		{
			name:      "Error_MissingUserIsInternal",
			lookupErr: userDomain.ErrUserNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, authDomain.ErrAuthorizationLookup)
				assert.NotErrorIs(t, err, apperrors.ErrNotFound)
				assert.NotErrorIs(t, err, apperrors.ErrForbidden)
			},
		},
		{
			name:      "Error_StorageFailureIsInternal",
			lookupErr: errors.New("connection refused"),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, authDomain.ErrAuthorizationLookup)
				assert.NotErrorIs(t, err, apperrors.ErrForbidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &mockUserRepository{}
			lookup.On("IsAdmin", ctx, subjectID).Return(tt.isAdmin, tt.lookupErr).Once()

			gate := NewAdminGate(lookup)
			tt.check(t, gate.RequireAdmin(ctx, subjectID))
			lookup.AssertExpectations(t)
		})
	}
}

func TestAdminGate_NoCaching(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.Must(uuid.NewV7())

	lookup := &mockUserRepository{}
	lookup.On("IsAdmin", ctx, subjectID).Return(true, nil).Once()
	lookup.On("IsAdmin", ctx, subjectID).Return(false, nil).Once()

	gate := NewAdminGate(lookup)
	assert.NoError(t, gate.RequireAdmin(ctx, subjectID))
	assert.ErrorIs(t, gate.RequireAdmin(ctx, subjectID), authDomain.ErrAdminRequired)
	lookup.AssertNumberOfCalls(t, "IsAdmin", 2)
}
