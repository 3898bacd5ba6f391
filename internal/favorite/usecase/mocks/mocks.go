// Package mocks provides mock implementations of the favorite use cases for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	favoriteDomain "github.com/allisson/echo/internal/favorite/domain"
)

// MockFavoriteUseCase is a mock implementation of FavoriteUseCase.
type MockFavoriteUseCase struct {
	mock.Mock
}

func (m *MockFavoriteUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*favoriteDomain.FavoriteSong, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*favoriteDomain.FavoriteSong), args.Error(1)
}

func (m *MockFavoriteUseCase) Add(ctx context.Context, userID, songID uuid.UUID) (*favoriteDomain.Favorite, error) {
	args := m.Called(ctx, userID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favoriteDomain.Favorite), args.Error(1)
}

func (m *MockFavoriteUseCase) Remove(ctx context.Context, userID, songID uuid.UUID) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}
