package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/echo/internal/playlist/domain"
)

func playlistRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "name", "description", "is_public", "created_at", "updated_at",
	})
}

func playlistSongRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "artist_id", "album_id", "genre", "duration_seconds", "audio_url",
		"created_at", "updated_at", "position", "added_at",
	})
}

func newTestPlaylist() *domain.Playlist {
	now := time.Now().UTC()
	return &domain.Playlist{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    uuid.Must(uuid.NewV7()),
		Name:      "Late night",
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgreSQLPlaylistRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	p := newTestPlaylist()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlists")).
		WithArgs(p.ID, p.UserID, p.Name, nil, true, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgreSQLPlaylistRepository(db)
	require.NoError(t, repo.Create(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPlaylistRepository_UpdateDelete_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("Update", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		p := newTestPlaylist()
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $5 AND user_id = $6")).
			WithArgs(p.Name, nil, true, p.UpdatedAt, p.ID, p.UserID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLPlaylistRepository(db)
		assert.ErrorIs(t, repo.Update(ctx, p), domain.ErrPlaylistNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		userID, playlistID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM playlists WHERE id = $1 AND user_id = $2")).
			WithArgs(playlistID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLPlaylistRepository(db)
		assert.ErrorIs(t, repo.Delete(ctx, userID, playlistID), domain.ErrPlaylistNotFound)
	})
}

func TestPostgreSQLPlaylistRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		p := newTestPlaylist()
		mock.ExpectQuery(regexp.QuoteMeta("FROM playlists WHERE id = $1 AND user_id = $2")).
			WithArgs(p.ID, p.UserID).
			WillReturnRows(playlistRows().AddRow(
				p.ID.String(), p.UserID.String(), p.Name, "for coding", true, p.CreatedAt, p.UpdatedAt,
			))

		repo := NewPostgreSQLPlaylistRepository(db)
		found, err := repo.GetByID(ctx, p.UserID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.UserID, found.UserID)
		require.NotNil(t, found.Description)
		assert.Equal(t, "for coding", *found.Description)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(regexp.QuoteMeta("FROM playlists")).WillReturnRows(playlistRows())

		repo := NewPostgreSQLPlaylistRepository(db)
		_, err = repo.GetByID(ctx, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})
}

func TestPostgreSQLPlaylistRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	p := newTestPlaylist()
	mock.ExpectQuery(regexp.QuoteMeta("is_public = TRUE")).
		WithArgs(p.UserID, true, "night", "%night%", 50, 0).
		WillReturnRows(playlistRows().AddRow(
			p.ID.String(), p.UserID.String(), p.Name, nil, true, p.CreatedAt, p.UpdatedAt,
		))

	repo := NewPostgreSQLPlaylistRepository(db)
	playlists, err := repo.List(
		context.Background(),
		p.UserID,
		domain.ListFilter{Name: "night", PublicOnly: true, Limit: 50},
	)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Nil(t, playlists[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPlaylistRepository_AddSong(t *testing.T) {
	ctx := context.Background()
	entry := &domain.Entry{
		PlaylistID: uuid.Must(uuid.NewV7()),
		SongID:     uuid.Must(uuid.NewV7()),
		Position:   3,
		AddedAt:    time.Now().UTC(),
	}

	tests := []struct {
		name     string
		dbErr    error
		expected error
	}{
		{name: "Success", dbErr: nil, expected: nil},
		{name: "Error_Duplicate", dbErr: &pq.Error{Code: "23505"}, expected: domain.ErrSongAlreadyInPlaylist},
		{name: "Error_UnknownSong", dbErr: &pq.Error{Code: "23503"}, expected: domain.ErrSongReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_songs")).
				WithArgs(entry.PlaylistID, entry.SongID, 3, entry.AddedAt)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			repo := NewPostgreSQLPlaylistRepository(db)
			err = repo.AddSong(ctx, entry)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestPostgreSQLPlaylistRepository_RemoveSong_NotInPlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM playlist_songs")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgreSQLPlaylistRepository(db)
	err = repo.RemoveSong(context.Background(), uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrSongNotInPlaylist)
}

func TestPostgreSQLPlaylistRepository_ListSongs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	playlistID := uuid.Must(uuid.NewV7())
	songID, artistID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY ps.position")).
		WithArgs(playlistID, 50, 0).
		WillReturnRows(playlistSongRows().AddRow(
			songID.String(), "So What", artistID.String(), nil, nil, 545,
			"https://cdn.example.com/so-what.mp3", now, now, 2, now,
		))

	repo := NewPostgreSQLPlaylistRepository(db)
	entries, err := repo.ListSongs(context.Background(), playlistID, 0, 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, songID, entries[0].Song.ID)
	assert.Equal(t, 2, entries[0].Position)
	assert.Equal(t, now, entries[0].AddedAt)
}
