// Package repository implements album persistence for PostgreSQL and MySQL.
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

const albumColumns = `id, name, artist_id, release_year, cover_url, created_at, updated_at`

// PostgreSQLAlbumRepository handles album persistence for PostgreSQL.
type PostgreSQLAlbumRepository struct {
	db *sql.DB
}

// NewPostgreSQLAlbumRepository creates a new PostgreSQLAlbumRepository.
func NewPostgreSQLAlbumRepository(db *sql.DB) *PostgreSQLAlbumRepository {
	return &PostgreSQLAlbumRepository{db: db}
}

func (r *PostgreSQLAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO albums (` + albumColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		album.ID,
		album.Name,
		album.ArtistID,
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

func (r *PostgreSQLAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE albums
			  SET name = $1, artist_id = $2, release_year = $3, cover_url = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		album.Name,
		album.ArtistID,
		album.ReleaseYear,
		album.CoverURL,
		album.UpdatedAt,
		album.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update album")
	}
	return requireAffected(result)
}

// Delete removes an album. The songs foreign key clears album_id on its songs.
func (r *PostgreSQLAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete album")
	}
	return requireAffected(result)
}

func (r *PostgreSQLAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = $1`

	album, err := scanPostgreSQLAlbum(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get album")
	}
	return album, nil
}

func (r *PostgreSQLAlbumRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Album, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + albumColumns + ` FROM albums
			  WHERE ($1 = '' OR name ILIKE $2)
			  ORDER BY name, id
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
		return nil, apperrors.Wrap(err, "failed to list albums")
	}
	return collectAlbums(rows, scanPostgreSQLAlbum)
}

func scanPostgreSQLAlbum(row database.RowScanner) (*domain.Album, error) {
	var album domain.Album
	var releaseYear sql.NullInt32

	err := row.Scan(
		&album.ID,
		&album.Name,
		&album.ArtistID,
		&releaseYear,
		&album.CoverURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	album.ReleaseYear = nullableInt(releaseYear)
	return &album, nil
}

func nullableInt(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func collectAlbums(rows *sql.Rows, scan func(database.RowScanner) (*domain.Album, error)) ([]*domain.Album, error) {
	defer func() {
		_ = rows.Close()
	}()

	albums := make([]*domain.Album, 0)
	for rows.Next() {
		album, err := scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan album")
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate albums")
	}
	return albums, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}
