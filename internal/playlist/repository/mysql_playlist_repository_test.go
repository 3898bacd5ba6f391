package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/echo/internal/database"
	"github.com/allisson/echo/internal/playlist/domain"
)

func TestMySQLPlaylistRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	p := newTestPlaylist()
	mock.ExpectQuery(regexp.QuoteMeta("FROM playlists WHERE id = ? AND user_id = ?")).
		WithArgs(database.UUIDBytes(p.ID), database.UUIDBytes(p.UserID)).
		WillReturnRows(playlistRows().AddRow(
			database.UUIDBytes(p.ID), database.UUIDBytes(p.UserID), p.Name, nil, false, p.CreatedAt, p.UpdatedAt,
		))

	repo := NewMySQLPlaylistRepository(db)
	found, err := repo.GetByID(context.Background(), p.UserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.False(t, found.IsPublic)
}

func TestMySQLPlaylistRepository_AddSong_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_songs")).
		WillReturnError(&mysql.MySQLError{Number: 1062})

	repo := NewMySQLPlaylistRepository(db)
	err = repo.AddSong(context.Background(), &domain.Entry{
		PlaylistID: uuid.Must(uuid.NewV7()),
		SongID:     uuid.Must(uuid.NewV7()),
		AddedAt:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrSongAlreadyInPlaylist)
}

func TestMySQLPlaylistRepository_ListSongs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	playlistID := uuid.Must(uuid.NewV7())
	songID, artistID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ps.playlist_id = ?")).
		WithArgs(database.UUIDBytes(playlistID), 10, 0).
		WillReturnRows(playlistSongRows().AddRow(
			database.UUIDBytes(songID), "So What", database.UUIDBytes(artistID), nil, "jazz", 545,
			"https://cdn.example.com/so-what.mp3", now, now, 1, now,
		))

	repo := NewMySQLPlaylistRepository(db)
	entries, err := repo.ListSongs(context.Background(), playlistID, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, artistID, entries[0].Song.ArtistID)
	assert.Equal(t, 1, entries[0].Position)
}

func TestMySQLPlaylistRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	userID, playlistID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM playlists WHERE id = ? AND user_id = ?")).
		WithArgs(database.UUIDBytes(playlistID), database.UUIDBytes(userID)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMySQLPlaylistRepository(db)
	require.NoError(t, repo.Delete(context.Background(), userID, playlistID))
}
