// Package domain defines the album catalog entities.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/errors"
)

// Album groups songs of one artist. Deleting an album keeps its songs as singles.
type Album struct {
	ID          uuid.UUID
	Name        string
	ArtistID    uuid.UUID
	ReleaseYear *int
	CoverURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AlbumInput holds the writable fields of an album. PUT replaces all of them.
type AlbumInput struct {
	Name        string
	ArtistID    uuid.UUID
	ReleaseYear *int
	CoverURL    *string
}

// Apply copies the input onto the album.
func (in *AlbumInput) Apply(album *Album) {
	album.Name = in.Name
	album.ArtistID = in.ArtistID
	album.ReleaseYear = in.ReleaseYear
	album.CoverURL = in.CoverURL
}

// ListFilter narrows an album listing. Query matches names case-insensitively.
type ListFilter struct {
	Query  string
	Offset int
	Limit  int
}

// ErrAlbumNotFound indicates the requested album does not exist.
var ErrAlbumNotFound = errors.Wrap(errors.ErrNotFound, "album not found")
