package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/metrics"
	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
)

// playlistUseCaseWithMetrics decorates PlaylistUseCase with metrics instrumentation.
type playlistUseCaseWithMetrics struct {
	next    PlaylistUseCase
	metrics metrics.BusinessMetrics
}

// NewPlaylistUseCaseWithMetrics wraps a PlaylistUseCase with metrics recording.
func NewPlaylistUseCaseWithMetrics(useCase PlaylistUseCase, m metrics.BusinessMetrics) PlaylistUseCase {
	return &playlistUseCaseWithMetrics{next: useCase, metrics: m}
}

func (p *playlistUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	p.metrics.RecordOperation(ctx, "playlists", operation, status)
	p.metrics.RecordDuration(ctx, "playlists", operation, time.Since(start), status)
}

func (p *playlistUseCaseWithMetrics) List(
	ctx context.Context,
	viewerID, ownerID uuid.UUID,
	filter playlistDomain.ListFilter,
) ([]*playlistDomain.Playlist, error) {
	start := time.Now()
	playlists, err := p.next.List(ctx, viewerID, ownerID, filter)
	p.record(ctx, "playlist_list", start, err)
	return playlists, err
}

func (p *playlistUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	start := time.Now()
	playlist, err := p.next.Create(ctx, ownerID, input)
	p.record(ctx, "playlist_create", start, err)
	return playlist, err
}

func (p *playlistUseCaseWithMetrics) Get(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
) (*playlistDomain.Playlist, error) {
	start := time.Now()
	playlist, err := p.next.Get(ctx, viewerID, ownerID, playlistID)
	p.record(ctx, "playlist_get", start, err)
	return playlist, err
}

func (p *playlistUseCaseWithMetrics) Update(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	start := time.Now()
	playlist, err := p.next.Update(ctx, ownerID, playlistID, input)
	p.record(ctx, "playlist_update", start, err)
	return playlist, err
}

func (p *playlistUseCaseWithMetrics) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, ownerID, playlistID)
	p.record(ctx, "playlist_delete", start, err)
	return err
}

func (p *playlistUseCaseWithMetrics) ListSongs(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
	offset, limit int,
) ([]*playlistDomain.PlaylistSong, error) {
	start := time.Now()
	songs, err := p.next.ListSongs(ctx, viewerID, ownerID, playlistID, offset, limit)
	p.record(ctx, "playlist_list_songs", start, err)
	return songs, err
}

func (p *playlistUseCaseWithMetrics) AddSong(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.AddSongInput,
) (*playlistDomain.Entry, error) {
	start := time.Now()
	entry, err := p.next.AddSong(ctx, ownerID, playlistID, input)
	p.record(ctx, "playlist_add_song", start, err)
	return entry, err
}

func (p *playlistUseCaseWithMetrics) RemoveSong(ctx context.Context, ownerID, playlistID, songID uuid.UUID) error {
	start := time.Now()
	err := p.next.RemoveSong(ctx, ownerID, playlistID, songID)
	p.record(ctx, "playlist_remove_song", start, err)
	return err
}
