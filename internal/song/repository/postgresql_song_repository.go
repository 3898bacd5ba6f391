// Package repository implements song persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/song/domain"
)

// SongColumns lists the songs table columns in scan order.
const SongColumns = `id, title, artist_id, album_id, genre, duration_seconds, audio_url, created_at, updated_at`

// QualifiedSongColumns is SongColumns prefixed with the "s" table alias for joins.
const QualifiedSongColumns = `s.id, s.title, s.artist_id, s.album_id, s.genre, s.duration_seconds, ` +
	`s.audio_url, s.created_at, s.updated_at`

// PostgreSQLSongRepository handles song persistence for PostgreSQL.
type PostgreSQLSongRepository struct {
	db *sql.DB
}

// NewPostgreSQLSongRepository creates a new PostgreSQLSongRepository.
func NewPostgreSQLSongRepository(db *sql.DB) *PostgreSQLSongRepository {
	return &PostgreSQLSongRepository{db: db}
}

func (r *PostgreSQLSongRepository) Create(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO songs (` + SongColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		song.ID,
		song.Title,
		song.ArtistID,
		song.AlbumID,
		song.Genre,
		song.DurationSeconds,
		song.AudioURL,
		song.CreatedAt,
		song.UpdatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrAlbumReference
		}
		return apperrors.Wrap(err, "failed to create song")
	}
	return nil
}

func (r *PostgreSQLSongRepository) Update(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE songs
			  SET title = $1, artist_id = $2, album_id = $3, genre = $4,
			      duration_seconds = $5, audio_url = $6, updated_at = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(
		ctx,
		query,
		song.Title,
		song.ArtistID,
		song.AlbumID,
		song.Genre,
		song.DurationSeconds,
		song.AudioURL,
		song.UpdatedAt,
		song.ID,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrAlbumReference
		}
		return apperrors.Wrap(err, "failed to update song")
	}
	return requireAffected(result)
}

func (r *PostgreSQLSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete song")
	}
	return requireAffected(result)
}

func (r *PostgreSQLSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs WHERE id = $1`

	song, err := ScanPostgreSQLSong(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get song")
	}
	return song, nil
}

// List returns songs ordered by title. An empty Query matches every song.
func (r *PostgreSQLSongRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs
			  WHERE ($1 = '' OR title ILIKE $2)
			  ORDER BY title, id
			  LIMIT $3 OFFSET $4`

	rows, err := querier.QueryContext(
		ctx,
		query,
		filter.Query,
		database.ContainsPattern(filter.Query),
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list songs")
	}
	return collectSongs(rows, ScanPostgreSQLSong)
}

// ListByAlbum returns the songs of an album in insertion order.
func (r *PostgreSQLSongRepository) ListByAlbum(
	ctx context.Context,
	albumID uuid.UUID,
	offset, limit int,
) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs
			  WHERE album_id = $1
			  ORDER BY created_at, id
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, albumID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list album songs")
	}
	return collectSongs(rows, ScanPostgreSQLSong)
}

// ScanPostgreSQLSong scans a row selected with SongColumns or QualifiedSongColumns.
func ScanPostgreSQLSong(row database.RowScanner) (*domain.Song, error) {
	var song domain.Song
	var albumID uuid.NullUUID

	err := row.Scan(
		&song.ID,
		&song.Title,
		&song.ArtistID,
		&albumID,
		&song.Genre,
		&song.DurationSeconds,
		&song.AudioURL,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	song.AlbumID = database.NullableUUID(albumID)
	return &song, nil
}

func collectSongs(rows *sql.Rows, scan func(database.RowScanner) (*domain.Song, error)) ([]*domain.Song, error) {
	defer func() {
		_ = rows.Close()
	}()

	songs := make([]*domain.Song, 0)
	for rows.Next() {
		song, err := scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan song")
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate songs")
	}
	return songs, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}
