package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
)

// MySQLAlbumRepository handles album persistence for MySQL
type MySQLAlbumRepository struct {
	db *sql.DB
}

// NewMySQLAlbumRepository creates a new MySQLAlbumRepository
func NewMySQLAlbumRepository(db *sql.DB) *MySQLAlbumRepository {
	return &MySQLAlbumRepository{db: db}
}

func (r *MySQLAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO albums (` + albumColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		database.UUIDBytes(album.ID),
		album.Name,
		database.UUIDBytes(album.ArtistID),
		album.ReleaseYear,
		album.CoverURL,
		album.CreatedAt,
		album.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create album")
	}
	return nil
}

func (r *MySQLAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE albums
			  SET name = ?, artist_id = ?, release_year = ?, cover_url = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		album.Name,
		database.UUIDBytes(album.ArtistID),
		album.ReleaseYear,
		album.CoverURL,
		album.UpdatedAt,
		database.UUIDBytes(album.ID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update album")
	}
	return requireAffected(result)
}

func (r *MySQLAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, database.UUIDBytes(id))
	if err != nil {
		return apperrors.Wrap(err, "failed to delete album")
	}
	return requireAffected(result)
}

func (r *MySQLAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = ?`

	album, err := scanMySQLAlbum(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get album")
	}
	return album, nil
}

func (r *MySQLAlbumRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Album, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + albumColumns + ` FROM albums
			  WHERE (? = '' OR name LIKE ?)
			  ORDER BY name, id
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
		return nil, apperrors.Wrap(err, "failed to list albums")
	}
	return collectAlbums(rows, scanMySQLAlbum)
}

func scanMySQLAlbum(row database.RowScanner) (*domain.Album, error) {
	var album domain.Album
	var idBytes, artistBytes []byte
	var releaseYear sql.NullInt32

	err := row.Scan(
		&idBytes,
		&album.Name,
		&artistBytes,
		&releaseYear,
		&album.CoverURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := album.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := album.ArtistID.UnmarshalBinary(artistBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal artist UUID")
	}
	album.ReleaseYear = nullableInt(releaseYear)
	return &album, nil
}
