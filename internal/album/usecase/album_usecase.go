package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/database"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

type albumUseCase struct {
	txManager  database.TxManager
	albumRepo  AlbumRepository
	songLister SongLister
}

func (a *albumUseCase) Create(
	ctx context.Context,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	now := time.Now().UTC()
	album := &albumDomain.Album{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(album)

	if err := a.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (a *albumUseCase) Get(ctx context.Context, albumID uuid.UUID) (*albumDomain.Album, error) {
	return a.albumRepo.GetByID(ctx, albumID)
}

func (a *albumUseCase) List(
	ctx context.Context,
	filter albumDomain.ListFilter,
) ([]*albumDomain.Album, error) {
	return a.albumRepo.List(ctx, filter)
}

func (a *albumUseCase) Update(
	ctx context.Context,
	albumID uuid.UUID,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	var album *albumDomain.Album

	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		album, err = a.albumRepo.GetByID(ctx, albumID)
		if err != nil {
			return err
		}

		input.Apply(album)
		album.UpdatedAt = time.Now().UTC()

		return a.albumRepo.Update(ctx, album)
	})
	if err != nil {
		return nil, err
	}

	return album, nil
}

func (a *albumUseCase) Delete(ctx context.Context, albumID uuid.UUID) error {
	return a.albumRepo.Delete(ctx, albumID)
}

func (a *albumUseCase) ListSongs(
	ctx context.Context,
	albumID uuid.UUID,
	offset, limit int,
) ([]*songDomain.Song, error) {
	if _, err := a.albumRepo.GetByID(ctx, albumID); err != nil {
		return nil, err
	}
	return a.songLister.ListByAlbum(ctx, albumID, offset, limit)
}

// NewAlbumUseCase creates a new AlbumUseCase.
func NewAlbumUseCase(
	txManager database.TxManager,
	albumRepo AlbumRepository,
	songLister SongLister,
) AlbumUseCase {
	return &albumUseCase{
		txManager:  txManager,
		albumRepo:  albumRepo,
		songLister: songLister,
	}
}
