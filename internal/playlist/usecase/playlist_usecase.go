package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/database"
	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
)

type playlistUseCase struct {
	txManager    database.TxManager
	playlistRepo PlaylistRepository
}

func (p *playlistUseCase) List(
	ctx context.Context,
	viewerID, ownerID uuid.UUID,
	filter playlistDomain.ListFilter,
) ([]*playlistDomain.Playlist, error) {
	filter.PublicOnly = viewerID != ownerID
	return p.playlistRepo.List(ctx, ownerID, filter)
}

func (p *playlistUseCase) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	now := time.Now().UTC()
	playlist := &playlistDomain.Playlist{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(playlist)

	if err := p.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (p *playlistUseCase) Get(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
) (*playlistDomain.Playlist, error) {
	playlist, err := p.playlistRepo.GetByID(ctx, ownerID, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.VisibleTo(viewerID) {
		return nil, playlistDomain.ErrPlaylistNotFound
	}
	return playlist, nil
}

func (p *playlistUseCase) Update(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	var playlist *playlistDomain.Playlist

	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		playlist, err = p.playlistRepo.GetByID(ctx, ownerID, playlistID)
		if err != nil {
			return err
		}

		input.Apply(playlist)
		playlist.UpdatedAt = time.Now().UTC()

		return p.playlistRepo.Update(ctx, playlist)
	})
	if err != nil {
		return nil, err
	}

	return playlist, nil
}

func (p *playlistUseCase) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	return p.playlistRepo.Delete(ctx, ownerID, playlistID)
}

func (p *playlistUseCase) ListSongs(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
	offset, limit int,
) ([]*playlistDomain.PlaylistSong, error) {
	if _, err := p.Get(ctx, viewerID, ownerID, playlistID); err != nil {
		return nil, err
	}
	return p.playlistRepo.ListSongs(ctx, playlistID, offset, limit)
}

// AddSong checks that ownerID owns the playlist before inserting, so the entry
// foreign keys can only fail on the song.
func (p *playlistUseCase) AddSong(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.AddSongInput,
) (*playlistDomain.Entry, error) {
	entry := &playlistDomain.Entry{
		PlaylistID: playlistID,
		SongID:     input.SongID,
		Position:   input.Position,
		AddedAt:    time.Now().UTC(),
	}

	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.playlistRepo.GetByID(ctx, ownerID, playlistID); err != nil {
			return err
		}
		return p.playlistRepo.AddSong(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (p *playlistUseCase) RemoveSong(ctx context.Context, ownerID, playlistID, songID uuid.UUID) error {
	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.playlistRepo.GetByID(ctx, ownerID, playlistID); err != nil {
			return err
		}
		return p.playlistRepo.RemoveSong(ctx, playlistID, songID)
	})
}

// NewPlaylistUseCase creates a new PlaylistUseCase.
func NewPlaylistUseCase(txManager database.TxManager, playlistRepo PlaylistRepository) PlaylistUseCase {
	return &playlistUseCase{
		txManager:    txManager,
		playlistRepo: playlistRepo,
	}
}
