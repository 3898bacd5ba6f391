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

// MySQLPlaylistRepository handles playlist persistence for MySQL
type MySQLPlaylistRepository struct {
	db *sql.DB
}

// NewMySQLPlaylistRepository creates a new MySQLPlaylistRepository
func NewMySQLPlaylistRepository(db *sql.DB) *MySQLPlaylistRepository {
	return &MySQLPlaylistRepository{db: db}
}

func (r *MySQLPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO playlists (` + playlistColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		database.UUIDBytes(playlist.ID),
		database.UUIDBytes(playlist.UserID),
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

func (r *MySQLPlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE playlists
			  SET name = ?, description = ?, is_public = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		playlist.Name,
		playlist.Description,
		playlist.IsPublic,
		playlist.UpdatedAt,
		database.UUIDBytes(playlist.ID),
		database.UUIDBytes(playlist.UserID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update playlist")
	}
	return requireAffected(result, domain.ErrPlaylistNotFound)
}

func (r *MySQLPlaylistRepository) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM playlists WHERE id = ? AND user_id = ?`,
		database.UUIDBytes(playlistID),
		database.UUIDBytes(userID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete playlist")
	}
	return requireAffected(result, domain.ErrPlaylistNotFound)
}

func (r *MySQLPlaylistRepository) GetByID(
	ctx context.Context,
	userID, playlistID uuid.UUID,
) (*domain.Playlist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = ? AND user_id = ?`

	row := querier.QueryRowContext(ctx, query, database.UUIDBytes(playlistID), database.UUIDBytes(userID))
	playlist, err := scanMySQLPlaylist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get playlist")
	}
	return playlist, nil
}

func (r *MySQLPlaylistRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter domain.ListFilter,
) ([]*domain.Playlist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + playlistColumns + ` FROM playlists
			  WHERE user_id = ?
			    AND (? = FALSE OR is_public = TRUE)
			    AND (? = '' OR name LIKE ?)
			  ORDER BY name, id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(
		ctx,
		query,
		database.UUIDBytes(userID),
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
		playlist, err := scanMySQLPlaylist(rows)
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

func (r *MySQLPlaylistRepository) AddSong(ctx context.Context, entry *domain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO playlist_songs (playlist_id, song_id, position, added_at) VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		database.UUIDBytes(entry.PlaylistID),
		database.UUIDBytes(entry.SongID),
		entry.Position,
		entry.AddedAt,
	)
	if err != nil {
		return mapEntryError(err)
	}
	return nil
}

func (r *MySQLPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = ? AND song_id = ?`,
		database.UUIDBytes(playlistID),
		database.UUIDBytes(songID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove playlist song")
	}
	return requireAffected(result, domain.ErrSongNotInPlaylist)
}

func (r *MySQLPlaylistRepository) ListSongs(
	ctx context.Context,
	playlistID uuid.UUID,
	offset, limit int,
) ([]*domain.PlaylistSong, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songRepository.QualifiedSongColumns + `, ps.position, ps.added_at
			  FROM playlist_songs ps
			  JOIN songs s ON s.id = ps.song_id
			  WHERE ps.playlist_id = ?
			  ORDER BY ps.position, ps.added_at
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, database.UUIDBytes(playlistID), limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list playlist songs")
	}
	return collectPlaylistSongs(rows, songRepository.ScanMySQLSong)
}

func scanMySQLPlaylist(row database.RowScanner) (*domain.Playlist, error) {
	var playlist domain.Playlist
	var idBytes, userBytes []byte

	err := row.Scan(
		&idBytes,
		&userBytes,
		&playlist.Name,
		&playlist.Description,
		&playlist.IsPublic,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := playlist.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := playlist.UserID.UnmarshalBinary(userBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user UUID")
	}
	return &playlist, nil
}
