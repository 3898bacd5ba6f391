package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/metrics"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// songUseCaseWithMetrics decorates SongUseCase with metrics instrumentation.
type songUseCaseWithMetrics struct {
	next    SongUseCase
	metrics metrics.BusinessMetrics
}

// NewSongUseCaseWithMetrics wraps a SongUseCase with metrics recording.
func NewSongUseCaseWithMetrics(useCase SongUseCase, m metrics.BusinessMetrics) SongUseCase {
	return &songUseCaseWithMetrics{next: useCase, metrics: m}
}

func (s *songUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	s.metrics.RecordOperation(ctx, "songs", operation, status)
	s.metrics.RecordDuration(ctx, "songs", operation, time.Since(start), status)
}

func (s *songUseCaseWithMetrics) Create(
	ctx context.Context,
	input *songDomain.SongInput,
) (*songDomain.Song, error) {
	start := time.Now()
	song, err := s.next.Create(ctx, input)
	s.record(ctx, "song_create", start, err)
	return song, err
}

func (s *songUseCaseWithMetrics) Get(ctx context.Context, songID uuid.UUID) (*songDomain.Song, error) {
	start := time.Now()
	song, err := s.next.Get(ctx, songID)
	s.record(ctx, "song_get", start, err)
	return song, err
}

func (s *songUseCaseWithMetrics) List(
	ctx context.Context,
	filter songDomain.ListFilter,
) ([]*songDomain.Song, error) {
	start := time.Now()
	songs, err := s.next.List(ctx, filter)
	s.record(ctx, "song_list", start, err)
	return songs, err
}

func (s *songUseCaseWithMetrics) Update(
	ctx context.Context,
	songID uuid.UUID,
	input *songDomain.SongInput,
) (*songDomain.Song, error) {
	start := time.Now()
	song, err := s.next.Update(ctx, songID, input)
	s.record(ctx, "song_update", start, err)
	return song, err
}

func (s *songUseCaseWithMetrics) Delete(ctx context.Context, songID uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, songID)
	s.record(ctx, "song_delete", start, err)
	return err
}
