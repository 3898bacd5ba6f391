// Package usecase implements playlist management and visibility rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
)

// PlaylistRepository defines persistence operations for playlists and their entries.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *playlistDomain.Playlist) error
	Update(ctx context.Context, playlist *playlistDomain.Playlist) error
	Delete(ctx context.Context, userID, playlistID uuid.UUID) error
	GetByID(ctx context.Context, userID, playlistID uuid.UUID) (*playlistDomain.Playlist, error)
	List(ctx context.Context, userID uuid.UUID, filter playlistDomain.ListFilter) ([]*playlistDomain.Playlist, error)
	AddSong(ctx context.Context, entry *playlistDomain.Entry) error
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error
	ListSongs(ctx context.Context, playlistID uuid.UUID, offset, limit int) ([]*playlistDomain.PlaylistSong, error)
}

// PlaylistUseCase defines playlist operations. Read operations take the viewer and
// the owner separately; a private playlist read by anyone but its owner behaves as
// if it did not exist. Write operations are only reachable by the owner.
type PlaylistUseCase interface {
	List(
		ctx context.Context,
		viewerID, ownerID uuid.UUID,
		filter playlistDomain.ListFilter,
	) ([]*playlistDomain.Playlist, error)

	Create(ctx context.Context, ownerID uuid.UUID, input *playlistDomain.PlaylistInput) (*playlistDomain.Playlist, error)

	Get(ctx context.Context, viewerID, ownerID, playlistID uuid.UUID) (*playlistDomain.Playlist, error)

	Update(
		ctx context.Context,
		ownerID, playlistID uuid.UUID,
		input *playlistDomain.PlaylistInput,
	) (*playlistDomain.Playlist, error)

	Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error

	ListSongs(
		ctx context.Context,
		viewerID, ownerID, playlistID uuid.UUID,
		offset, limit int,
	) ([]*playlistDomain.PlaylistSong, error)

	// AddSong appends a song entry. Returns ErrSongAlreadyInPlaylist on duplicates
	// and ErrSongReference when the song does not exist.
	AddSong(
		ctx context.Context,
		ownerID, playlistID uuid.UUID,
		input *playlistDomain.AddSongInput,
	) (*playlistDomain.Entry, error)

	RemoveSong(ctx context.Context, ownerID, playlistID, songID uuid.UUID) error
}
