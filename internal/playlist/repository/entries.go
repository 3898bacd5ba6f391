package repository

import (
	"database/sql"
	"time"

	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/playlist/domain"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// mapEntryError translates constraint violations raised when inserting a
// playlist entry. Callers check the playlist first, so a foreign key failure
// points at the song.
func mapEntryError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return domain.ErrSongAlreadyInPlaylist
	case database.IsForeignKeyViolation(err):
		return domain.ErrSongReference
	default:
		return apperrors.Wrap(err, "failed to add playlist song")
	}
}

func collectPlaylistSongs(
	rows *sql.Rows,
	scanSong func(database.RowScanner) (*songDomain.Song, error),
) ([]*domain.PlaylistSong, error) {
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*domain.PlaylistSong, 0)
	for rows.Next() {
		var position int
		var addedAt time.Time

		song, err := scanSong(database.ScanAlso(rows, &position, &addedAt))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan playlist song")
		}
		entries = append(entries, &domain.PlaylistSong{Song: song, Position: position, AddedAt: addedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate playlist songs")
	}
	return entries, nil
}

func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
