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

	"github.com/allisson/echo/internal/favorite/domain"
)

func favoriteSongRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "artist_id", "album_id", "genre", "duration_seconds", "audio_url",
		"created_at", "updated_at", "added_at",
	})
}

func newTestFavorite() *domain.Favorite {
	return &domain.Favorite{
		UserID:  uuid.Must(uuid.NewV7()),
		SongID:  uuid.Must(uuid.NewV7()),
		AddedAt: time.Now().UTC(),
	}
}

func TestPostgreSQLFavoriteRepository_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		dbErr       error
		expectedErr error
	}{
		{name: "Success", dbErr: nil, expectedErr: nil},
		{name: "Error_Duplicate", dbErr: &pq.Error{Code: "23505"}, expectedErr: domain.ErrAlreadyFavorite},
		{name: "Error_UnknownSong", dbErr: &pq.Error{Code: "23503"}, expectedErr: domain.ErrSongReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			f := newTestFavorite()
			expect := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favorites")).
				WithArgs(f.UserID, f.SongID, f.AddedAt)
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			repo := NewPostgreSQLFavoriteRepository(db)
			err = repo.Add(ctx, f)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgreSQLFavoriteRepository_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		userID, songID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites WHERE user_id = $1 AND song_id = $2")).
			WithArgs(userID, songID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLFavoriteRepository(db)
		assert.NoError(t, repo.Remove(context.Background(), userID, songID))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLFavoriteRepository(db)
		err = repo.Remove(context.Background(), uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	})
}

func TestPostgreSQLFavoriteRepository_ListSongs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	userID := uuid.Must(uuid.NewV7())
	songID, artistID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	now := time.Now().UTC()
	addedAt := now.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.user_id = $1")).
		WithArgs(userID, 50, 0).
		WillReturnRows(favoriteSongRows().AddRow(
			songID.String(), "Blue in Green", artistID.String(), nil, nil, 337,
			"https://cdn.example.com/blue-in-green.mp3", now, now, addedAt,
		))

	repo := NewPostgreSQLFavoriteRepository(db)
	favorites, err := repo.ListSongs(context.Background(), userID, 0, 50)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, songID, favorites[0].Song.ID)
	assert.Nil(t, favorites[0].Song.AlbumID)
	assert.Equal(t, addedAt, favorites[0].AddedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
