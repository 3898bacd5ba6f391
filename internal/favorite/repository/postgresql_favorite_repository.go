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

// PostgreSQLFavoriteRepository handles favorite persistence for PostgreSQL.
type PostgreSQLFavoriteRepository struct {
	db *sql.DB
}

// NewPostgreSQLFavoriteRepository creates a new PostgreSQLFavoriteRepository.
func NewPostgreSQLFavoriteRepository(db *sql.DB) *PostgreSQLFavoriteRepository {
	return &PostgreSQLFavoriteRepository{db: db}
}

func (r *PostgreSQLFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(
		ctx,
		`INSERT INTO favorites (user_id, song_id, added_at) VALUES ($1, $2, $3)`,
		favorite.UserID,
		favorite.SongID,
		favorite.AddedAt,
	)
	if err != nil {
		return mapAddError(err)
	}
	return nil
}

func (r *PostgreSQLFavoriteRepository) Remove(ctx context.Context, userID, songID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND song_id = $2`,
		userID,
		songID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove favorite")
	}
	return requireAffected(result)
}

// ListSongs returns the user's favorite songs, most recently added first.
func (r *PostgreSQLFavoriteRepository) ListSongs(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.FavoriteSong, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songRepository.QualifiedSongColumns + `, f.added_at
			  FROM favorites f
			  JOIN songs s ON s.id = f.song_id
			  WHERE f.user_id = $1
			  ORDER BY f.added_at DESC, s.id
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorite songs")
	}
	return collectFavoriteSongs(rows, songRepository.ScanPostgreSQLSong)
}
