// Package repository implements playlist persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/playlist/domain"
	songRepository "github.com/allisson/echo/internal/song/repository"
)

const playlistColumns = `id, user_id, name, description, is_public, created_at, updated_at`

// PostgreSQLPlaylistRepository handles playlist persistence for PostgreSQL.
type PostgreSQLPlaylistRepository struct {
	db *sql.DB
}

// NewPostgreSQLPlaylistRepository creates a new PostgreSQLPlaylistRepository.
func NewPostgreSQLPlaylistRepository(db *sql.DB) *PostgreSQLPlaylistRepository {
	return &PostgreSQLPlaylistRepository{db: db}
}

func (r *PostgreSQLPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO playlists (` + playlistColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		playlist.ID,
		playlist.UserID,
		playlist.Name,
		playlist.Description,
		playlist.IsPublic,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create playlist")
	}
	return nil
}

func (r *PostgreSQLPlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE playlists
			  SET name = $1, description = $2, is_public = $3, updated_at = $4
			  WHERE id = $5 AND user_id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		playlist.Name,
		playlist.Description,
		playlist.IsPublic,
		playlist.UpdatedAt,
		playlist.ID,
		playlist.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update playlist")
	}
	return requireAffected(result, domain.ErrPlaylistNotFound)
}

// Delete removes a playlist owned by userID together with its entries.
func (r *PostgreSQLPlaylistRepository) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM playlists WHERE id = $1 AND user_id = $2`,
		playlistID,
		userID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete playlist")
	}
	return requireAffected(result, domain.ErrPlaylistNotFound)
}

// GetByID retrieves a playlist of userID. Visibility is decided by the caller.
func (r *PostgreSQLPlaylistRepository) GetByID(
	ctx context.Context,
	userID, playlistID uuid.UUID,
) (*domain.Playlist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1 AND user_id = $2`

	playlist, err := scanPostgreSQLPlaylist(querier.QueryRowContext(ctx, query, playlistID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get playlist")
	}
	return playlist, nil
}

func (r *PostgreSQLPlaylistRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter domain.ListFilter,
) ([]*domain.Playlist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + playlistColumns + ` FROM playlists
			  WHERE user_id = $1
			    AND ($2 = FALSE OR is_public = TRUE)
			    AND ($3 = '' OR name ILIKE $4)
			  ORDER BY name, id
			  LIMIT $5 OFFSET $6`

	rows, err := querier.QueryContext(
		ctx,
		query,
		userID,
		filter.PublicOnly,
		filter.Name,
		database.ContainsPattern(filter.Name),
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list playlists")
	}
	defer func() {
		_ = rows.Close()
	}()

	playlists := make([]*domain.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPostgreSQLPlaylist(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan playlist")
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate playlists")
	}
	return playlists, nil
}

// AddSong inserts a playlist entry.
func (r *PostgreSQLPlaylistRepository) AddSong(ctx context.Context, entry *domain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO playlist_songs (playlist_id, song_id, position, added_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, entry.PlaylistID, entry.SongID, entry.Position, entry.AddedAt)
	if err != nil {
		return mapEntryError(err)
	}
	return nil
}

func (r *PostgreSQLPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`,
		playlistID,
		songID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove playlist song")
	}
	return requireAffected(result, domain.ErrSongNotInPlaylist)
}

// ListSongs returns the songs of a playlist ordered by position.
func (r *PostgreSQLPlaylistRepository) ListSongs(
	ctx context.Context,
	playlistID uuid.UUID,
	offset, limit int,
) ([]*domain.PlaylistSong, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songRepository.QualifiedSongColumns + `, ps.position, ps.added_at
			  FROM playlist_songs ps
			  JOIN songs s ON s.id = ps.song_id
			  WHERE ps.playlist_id = $1
			  ORDER BY ps.position, ps.added_at
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, playlistID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list playlist songs")
	}
	return collectPlaylistSongs(rows, songRepository.ScanPostgreSQLSong)
}

func scanPostgreSQLPlaylist(row database.RowScanner) (*domain.Playlist, error) {
	var playlist domain.Playlist

	err := row.Scan(
		&playlist.ID,
		&playlist.UserID,
		&playlist.Name,
		&playlist.Description,
		&playlist.IsPublic,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}
