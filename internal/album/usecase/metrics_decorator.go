package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/metrics"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// albumUseCaseWithMetrics decorates AlbumUseCase with metrics instrumentation.
type albumUseCaseWithMetrics struct {
	next    AlbumUseCase
	metrics metrics.BusinessMetrics
}

// NewAlbumUseCaseWithMetrics wraps an AlbumUseCase with metrics recording.
func NewAlbumUseCaseWithMetrics(useCase AlbumUseCase, m metrics.BusinessMetrics) AlbumUseCase {
	return &albumUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *albumUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	a.metrics.RecordOperation(ctx, "albums", operation, status)
	a.metrics.RecordDuration(ctx, "albums", operation, time.Since(start), status)
}

func (a *albumUseCaseWithMetrics) Create(
	ctx context.Context,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	start := time.Now()
	album, err := a.next.Create(ctx, input)
	a.record(ctx, "album_create", start, err)
	return album, err
}

func (a *albumUseCaseWithMetrics) Get(ctx context.Context, albumID uuid.UUID) (*albumDomain.Album, error) {
	start := time.Now()
	album, err := a.next.Get(ctx, albumID)
	a.record(ctx, "album_get", start, err)
	return album, err
}

func (a *albumUseCaseWithMetrics) List(
	ctx context.Context,
	filter albumDomain.ListFilter,
) ([]*albumDomain.Album, error) {
	start := time.Now()
	albums, err := a.next.List(ctx, filter)
	a.record(ctx, "album_list", start, err)
	return albums, err
}

func (a *albumUseCaseWithMetrics) Update(
	ctx context.Context,
	albumID uuid.UUID,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	start := time.Now()
	album, err := a.next.Update(ctx, albumID, input)
	a.record(ctx, "album_update", start, err)
	return album, err
}

func (a *albumUseCaseWithMetrics) Delete(ctx context.Context, albumID uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, albumID)
	a.record(ctx, "album_delete", start, err)
	return err
}

func (a *albumUseCaseWithMetrics) ListSongs(
	ctx context.Context,
	albumID uuid.UUID,
	offset, limit int,
) ([]*songDomain.Song, error) {
	start := time.Now()
	songs, err := a.next.ListSongs(ctx, albumID, offset, limit)
	a.record(ctx, "album_list_songs", start, err)
	return songs, err
}
