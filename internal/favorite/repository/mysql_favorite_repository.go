package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/favorite/domain"
	songRepository "github.com/allisson/echo/internal/song/repository"
)

// MySQLFavoriteRepository handles favorite persistence for MySQL.
type MySQLFavoriteRepository struct {
	db *sql.DB
}

// NewMySQLFavoriteRepository creates a new MySQLFavoriteRepository.
func NewMySQLFavoriteRepository(db *sql.DB) *MySQLFavoriteRepository {
	return &MySQLFavoriteRepository{db: db}
}

func (r *MySQLFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(
		ctx,
		`INSERT INTO favorites (user_id, song_id, added_at) VALUES (?, ?, ?)`,
		database.UUIDBytes(favorite.UserID),
		database.UUIDBytes(favorite.SongID),
		favorite.AddedAt,
	)
	if err != nil {
		return mapAddError(err)
	}
	return nil
}

func (r *MySQLFavoriteRepository) Remove(ctx context.Context, userID, songID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM favorites WHERE user_id = ? AND song_id = ?`,
		database.UUIDBytes(userID),
		database.UUIDBytes(songID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove favorite")
	}
	return requireAffected(result)
}

func (r *MySQLFavoriteRepository) ListSongs(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.FavoriteSong, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songRepository.QualifiedSongColumns + `, f.added_at
			  FROM favorites f
			  JOIN songs s ON s.id = f.song_id
			  WHERE f.user_id = ?
			  ORDER BY f.added_at DESC, s.id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, database.UUIDBytes(userID), limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorite songs")
	}
	return collectFavoriteSongs(rows, songRepository.ScanMySQLSong)
}
