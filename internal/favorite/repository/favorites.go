// Package repository implements favorite persistence for PostgreSQL and MySQL.
package repository

import (
	"database/sql"
	"time"

	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/favorite/domain"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// mapAddError translates constraint violations raised when inserting a favorite.
// The user is the authenticated caller, so a foreign key failure points at the song.
func mapAddError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return domain.ErrAlreadyFavorite
	case database.IsForeignKeyViolation(err):
		return domain.ErrSongReference
	default:
		return apperrors.Wrap(err, "failed to add favorite")
	}
}

func collectFavoriteSongs(
	rows *sql.Rows,
	scanSong func(database.RowScanner) (*songDomain.Song, error),
) ([]*domain.FavoriteSong, error) {
	defer func() {
		_ = rows.Close()
	}()

	favorites := make([]*domain.FavoriteSong, 0)
	for rows.Next() {
		var addedAt time.Time

		song, err := scanSong(database.ScanAlso(rows, &addedAt))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan favorite song")
		}
		favorites = append(favorites, &domain.FavoriteSong{Song: song, AddedAt: addedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate favorite songs")
	}
	return favorites, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
