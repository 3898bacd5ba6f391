// Package domain defines the song catalog entities.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/errors"
)

// Song is a track of the catalog. AlbumID is nil for singles and is cleared when
// the album is deleted.
type Song struct {
	ID              uuid.UUID
	Title           string
	ArtistID        uuid.UUID
	AlbumID         *uuid.UUID
	Genre           *string
	DurationSeconds int
	AudioURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SongInput holds the writable fields of a song. PUT replaces all of them.
type SongInput struct {
	Title           string
	ArtistID        uuid.UUID
	AlbumID         *uuid.UUID
	Genre           *string
	DurationSeconds int
	AudioURL        string
}

// Apply copies the input onto the song.
func (in *SongInput) Apply(song *Song) {
	song.Title = in.Title
	song.ArtistID = in.ArtistID
	song.AlbumID = in.AlbumID
	song.Genre = in.Genre
	song.DurationSeconds = in.DurationSeconds
	song.AudioURL = in.AudioURL
}

// ListFilter narrows a song listing. Query matches titles case-insensitively.
type ListFilter struct {
	Query  string
	Offset int
	Limit  int
}

// Domain-specific errors for song operations.
var (
	// ErrSongNotFound indicates the requested song does not exist.
	ErrSongNotFound = errors.Wrap(errors.ErrNotFound, "song not found")

	// ErrAlbumReference indicates album_id names an album that does not exist.
	ErrAlbumReference = errors.NewPublic(errors.ErrInvalidInput, "album_id does not reference an existing album")
)
