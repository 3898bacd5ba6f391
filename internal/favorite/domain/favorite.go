// Package domain defines favorite songs of a user.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/errors"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// Favorite marks a song as liked by a user. A user likes a song at most once.
type Favorite struct {
	UserID  uuid.UUID
	SongID  uuid.UUID
	AddedAt time.Time
}

// FavoriteSong is a song as listed in a user's favorites.
type FavoriteSong struct {
	Song    *songDomain.Song
	AddedAt time.Time
}

// Domain-specific errors for favorite operations.
var (
	// ErrAlreadyFavorite indicates the user already liked the song.
	ErrAlreadyFavorite = errors.NewPublic(errors.ErrConflict, "Song is already a favorite")

	// ErrFavoriteNotFound indicates the song is not among the user's favorites.
	ErrFavoriteNotFound = errors.Wrap(errors.ErrNotFound, "favorite not found")

	// ErrSongReference indicates song_id does not name an existing song.
	ErrSongReference = errors.NewPublic(errors.ErrNotFound, "Song not found")
)
