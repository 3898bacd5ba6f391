// Package usecase implements the song catalog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	songDomain "github.com/allisson/echo/internal/song/domain"
)

// SongRepository defines persistence operations for songs.
type SongRepository interface {
	Create(ctx context.Context, song *songDomain.Song) error
	Update(ctx context.Context, song *songDomain.Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*songDomain.Song, error)
	List(ctx context.Context, filter songDomain.ListFilter) ([]*songDomain.Song, error)
}

// SongUseCase defines song catalog operations.
type SongUseCase interface {
	// Create adds a song. Returns ErrAlbumReference if AlbumID names a missing album.
	Create(ctx context.Context, input *songDomain.SongInput) (*songDomain.Song, error)

	// Get retrieves a song by ID. Returns ErrSongNotFound if not found.
	Get(ctx context.Context, songID uuid.UUID) (*songDomain.Song, error)

	// List returns a page of songs filtered by title.
	List(ctx context.Context, filter songDomain.ListFilter) ([]*songDomain.Song, error)

	// Update replaces every writable field of the song.
	Update(ctx context.Context, songID uuid.UUID, input *songDomain.SongInput) (*songDomain.Song, error)

	// Delete removes a song. Playlist entries and favorites referencing it go with it.
	Delete(ctx context.Context, songID uuid.UUID) error
}
