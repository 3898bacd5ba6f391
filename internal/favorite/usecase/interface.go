// Package usecase implements business logic for favorite songs.
package usecase

import (
	"context"

	"github.com/google/uuid"

	favoriteDomain "github.com/allisson/echo/internal/favorite/domain"
)

// FavoriteRepository defines the interface for favorite persistence.
type FavoriteRepository interface {
	Add(ctx context.Context, favorite *favoriteDomain.Favorite) error
	Remove(ctx context.Context, userID, songID uuid.UUID) error
	ListSongs(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*favoriteDomain.FavoriteSong, error)
}

// FavoriteUseCase defines the interface for favorite business logic.
// The user id is always the authenticated owner of the favorites.
type FavoriteUseCase interface {
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*favoriteDomain.FavoriteSong, error)
	Add(ctx context.Context, userID, songID uuid.UUID) (*favoriteDomain.Favorite, error)
	Remove(ctx context.Context, userID, songID uuid.UUID) error
}
