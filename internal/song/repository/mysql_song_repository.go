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

// MySQLSongRepository handles song persistence for MySQL
type MySQLSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository creates a new MySQLSongRepository
func NewMySQLSongRepository(db *sql.DB) *MySQLSongRepository {
	return &MySQLSongRepository{db: db}
}

func (r *MySQLSongRepository) Create(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO songs (` + SongColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		database.UUIDBytes(song.ID),
		song.Title,
		database.UUIDBytes(song.ArtistID),
		database.NullableUUIDBytes(song.AlbumID),
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

func (r *MySQLSongRepository) Update(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE songs
			  SET title = ?, artist_id = ?, album_id = ?, genre = ?,
			      duration_seconds = ?, audio_url = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		song.Title,
		database.UUIDBytes(song.ArtistID),
		database.NullableUUIDBytes(song.AlbumID),
		song.Genre,
		song.DurationSeconds,
		song.AudioURL,
		song.UpdatedAt,
		database.UUIDBytes(song.ID),
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrAlbumReference
		}
		return apperrors.Wrap(err, "failed to update song")
	}

	// updated_at always changes, so zero affected rows means the song is gone.
	return requireAffected(result)
}

func (r *MySQLSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, database.UUIDBytes(id))
	if err != nil {
		return apperrors.Wrap(err, "failed to delete song")
	}
	return requireAffected(result)
}

func (r *MySQLSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs WHERE id = ?`

	song, err := ScanMySQLSong(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get song")
	}
	return song, nil
}

// List returns songs ordered by title. The default MySQL collation makes LIKE
// case-insensitive.
func (r *MySQLSongRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs
			  WHERE (? = '' OR title LIKE ?)
			  ORDER BY title, id
			  LIMIT ? OFFSET ?`

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
	return collectSongs(rows, ScanMySQLSong)
}

func (r *MySQLSongRepository) ListByAlbum(
	ctx context.Context,
	albumID uuid.UUID,
	offset, limit int,
) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + SongColumns + ` FROM songs
			  WHERE album_id = ?
			  ORDER BY created_at, id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, database.UUIDBytes(albumID), limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list album songs")
	}
	return collectSongs(rows, ScanMySQLSong)
}

// ScanMySQLSong scans a row selected with SongColumns or QualifiedSongColumns.
func ScanMySQLSong(row database.RowScanner) (*domain.Song, error) {
	var song domain.Song
	var idBytes, artistBytes []byte
	var albumID uuid.NullUUID

	err := row.Scan(
		&idBytes,
		&song.Title,
		&artistBytes,
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

	if err := song.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := song.ArtistID.UnmarshalBinary(artistBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal artist UUID")
	}
	song.AlbumID = database.NullableUUID(albumID)
	return &song, nil
}
