package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	favoriteDomain "github.com/allisson/echo/internal/favorite/domain"
)

type favoriteUseCase struct {
	favoriteRepo FavoriteRepository
}

func (f *favoriteUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*favoriteDomain.FavoriteSong, error) {
	return f.favoriteRepo.ListSongs(ctx, userID, offset, limit)
}

func (f *favoriteUseCase) Add(ctx context.Context, userID, songID uuid.UUID) (*favoriteDomain.Favorite, error) {
	favorite := &favoriteDomain.Favorite{
		UserID:  userID,
		SongID:  songID,
		AddedAt: time.Now().UTC(),
	}
	if err := f.favoriteRepo.Add(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (f *favoriteUseCase) Remove(ctx context.Context, userID, songID uuid.UUID) error {
	return f.favoriteRepo.Remove(ctx, userID, songID)
}

// NewFavoriteUseCase creates a new FavoriteUseCase.
func NewFavoriteUseCase(favoriteRepo FavoriteRepository) FavoriteUseCase {
	return &favoriteUseCase{favoriteRepo: favoriteRepo}
}
