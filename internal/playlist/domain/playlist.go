// Package domain defines user playlists and their song entries.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/errors"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// Playlist is an ordered collection of songs owned by one user.
type Playlist struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo reports whether viewerID may read the playlist. Owners see every
// playlist they own; everyone else sees public ones only.
func (p *Playlist) VisibleTo(viewerID uuid.UUID) bool {
	return p.IsPublic || p.UserID == viewerID
}

// PlaylistInput holds the writable fields of a playlist. PUT replaces all of them.
type PlaylistInput struct {
	Name        string
	Description *string
	IsPublic    bool
}

// Apply copies the input onto the playlist.
func (in *PlaylistInput) Apply(playlist *Playlist) {
	playlist.Name = in.Name
	playlist.Description = in.Description
	playlist.IsPublic = in.IsPublic
}

// ListFilter narrows a playlist listing. Name matches case-insensitively.
type ListFilter struct {
	Name       string
	PublicOnly bool
	Offset     int
	Limit      int
}

// Entry places a song at a position in a playlist.
type Entry struct {
	PlaylistID uuid.UUID
	SongID     uuid.UUID
	Position   int
	AddedAt    time.Time
}

// AddSongInput is the request to add a song to a playlist.
type AddSongInput struct {
	SongID   uuid.UUID
	Position int
}

// PlaylistSong is a song as listed in a playlist.
type PlaylistSong struct {
	Song     *songDomain.Song
	Position int
	AddedAt  time.Time
}

// Domain-specific errors for playlist operations.
var (
	// ErrPlaylistNotFound is returned for missing playlists and for private
	// playlists requested by someone other than the owner.
	ErrPlaylistNotFound = errors.Wrap(errors.ErrNotFound, "playlist not found")

	// ErrSongAlreadyInPlaylist indicates the song is already part of the playlist.
	ErrSongAlreadyInPlaylist = errors.NewPublic(errors.ErrConflict, "Song is already in the playlist")

	// ErrSongNotInPlaylist indicates the playlist has no entry for the song.
	ErrSongNotInPlaylist = errors.Wrap(errors.ErrNotFound, "song not in playlist")

	// ErrSongReference indicates song_id does not name an existing song.
	ErrSongReference = errors.NewPublic(errors.ErrNotFound, "Song not found")
)
