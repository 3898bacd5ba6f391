// Package usecase implements the album catalog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// AlbumRepository defines persistence operations for albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *albumDomain.Album) error
	Update(ctx context.Context, album *albumDomain.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*albumDomain.Album, error)
	List(ctx context.Context, filter albumDomain.ListFilter) ([]*albumDomain.Album, error)
}

// SongLister lists the songs that belong to an album.
type SongLister interface {
	ListByAlbum(ctx context.Context, albumID uuid.UUID, offset, limit int) ([]*songDomain.Song, error)
}

// AlbumUseCase defines album catalog operations.
type AlbumUseCase interface {
	Create(ctx context.Context, input *albumDomain.AlbumInput) (*albumDomain.Album, error)

	// Get retrieves an album by ID. Returns ErrAlbumNotFound if not found.
	Get(ctx context.Context, albumID uuid.UUID) (*albumDomain.Album, error)

	List(ctx context.Context, filter albumDomain.ListFilter) ([]*albumDomain.Album, error)

	// Update replaces every writable field of the album.
	Update(ctx context.Context, albumID uuid.UUID, input *albumDomain.AlbumInput) (*albumDomain.Album, error)

	// Delete removes an album. Its songs remain in the catalog without an album.
	Delete(ctx context.Context, albumID uuid.UUID) error

	// ListSongs returns a page of the album's songs. Returns ErrAlbumNotFound if the
	// album does not exist, so an empty album is distinguishable from a missing one.
	ListSongs(ctx context.Context, albumID uuid.UUID, offset, limit int) ([]*songDomain.Song, error)
}
