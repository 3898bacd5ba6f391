package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/database"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

type songUseCase struct {
	txManager database.TxManager
	songRepo  SongRepository
}

func (s *songUseCase) Create(ctx context.Context, input *songDomain.SongInput) (*songDomain.Song, error) {
	now := time.Now().UTC()
	song := &songDomain.Song{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(song)

	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songUseCase) Get(ctx context.Context, songID uuid.UUID) (*songDomain.Song, error) {
	return s.songRepo.GetByID(ctx, songID)
}

func (s *songUseCase) List(ctx context.Context, filter songDomain.ListFilter) ([]*songDomain.Song, error) {
	return s.songRepo.List(ctx, filter)
}

func (s *songUseCase) Update(
	ctx context.Context,
	songID uuid.UUID,
	input *songDomain.SongInput,
) (*songDomain.Song, error) {
	var song *songDomain.Song

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		song, err = s.songRepo.GetByID(ctx, songID)
		if err != nil {
			return err
		}

		input.Apply(song)
		song.UpdatedAt = time.Now().UTC()

		return s.songRepo.Update(ctx, song)
	})
	if err != nil {
		return nil, err
	}

	return song, nil
}

func (s *songUseCase) Delete(ctx context.Context, songID uuid.UUID) error {
	return s.songRepo.Delete(ctx, songID)
}

// NewSongUseCase creates a new SongUseCase.
func NewSongUseCase(txManager database.TxManager, songRepo SongRepository) SongUseCase {
	return &songUseCase{
		txManager: txManager,
		songRepo:  songRepo,
	}
}
