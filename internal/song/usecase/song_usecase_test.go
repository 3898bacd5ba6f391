package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	songDomain "github.com/allisson/echo/internal/song/domain"
)

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

type mockSongRepository struct {
	mock.Mock
}

func (m *mockSongRepository) Create(ctx context.Context, song *songDomain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *mockSongRepository) Update(ctx context.Context, song *songDomain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *mockSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*songDomain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*songDomain.Song), args.Error(1)
}

func (m *mockSongRepository) List(ctx context.Context, filter songDomain.ListFilter) ([]*songDomain.Song, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*songDomain.Song), args.Error(1)
}

func newSongInput() *songDomain.SongInput {
	return &songDomain.SongInput{
		Title:           "Blue in Green",
		ArtistID:        uuid.Must(uuid.NewV7()),
		DurationSeconds: 337,
		AudioURL:        "https://cdn.example.com/blue-in-green.mp3",
	}
}

func TestSongUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &mockSongRepository{}
		uc := NewSongUseCase(&mockTxManager{}, repo)
		input := newSongInput()

		repo.On("Create", ctx, mock.MatchedBy(func(s *songDomain.Song) bool {
			return s.ID != uuid.Nil && s.Title == input.Title && s.ArtistID == input.ArtistID
		})).Return(nil).Once()

		song, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 337, song.DurationSeconds)
		assert.Equal(t, song.CreatedAt, song.UpdatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("Error_UnknownAlbum", func(t *testing.T) {
		repo := &mockSongRepository{}
		uc := NewSongUseCase(&mockTxManager{}, repo)

		repo.On("Create", ctx, mock.Anything).Return(songDomain.ErrAlbumReference).Once()

		song, err := uc.Create(ctx, newSongInput())
		assert.Nil(t, song)
		assert.ErrorIs(t, err, songDomain.ErrAlbumReference)
	})
}

func TestSongUseCase_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("Success_ReplacesAllFields", func(t *testing.T) {
		repo := &mockSongRepository{}
		tx := &mockTxManager{}
		uc := NewSongUseCase(tx, repo)

		albumID := uuid.Must(uuid.NewV7())
		genre := "jazz"
		existing := &songDomain.Song{
			ID:        id,
			Title:     "Old",
			AlbumID:   &albumID,
			Genre:     &genre,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		input := newSongInput()

		tx.On("WithTx", ctx).Once()
		repo.On("GetByID", ctx, id).Return(existing, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(s *songDomain.Song) bool {
			return s.Title == input.Title && s.AlbumID == nil && s.Genre == nil && s.UpdatedAt.After(createdAt)
		})).Return(nil).Once()

		song, err := uc.Update(ctx, id, input)
		require.NoError(t, err)
		assert.Equal(t, createdAt, song.CreatedAt)
		tx.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &mockSongRepository{}
		tx := &mockTxManager{}
		uc := NewSongUseCase(tx, repo)

		tx.On("WithTx", ctx).Once()
		repo.On("GetByID", ctx, id).Return(nil, songDomain.ErrSongNotFound).Once()

		song, err := uc.Update(ctx, id, newSongInput())
		assert.Nil(t, song)
		assert.ErrorIs(t, err, songDomain.ErrSongNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSongUseCase_ListGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := &mockSongRepository{}
	uc := NewSongUseCase(&mockTxManager{}, repo)

	id := uuid.Must(uuid.NewV7())
	filter := songDomain.ListFilter{Query: "blue", Limit: 10}

	repo.On("List", ctx, filter).Return([]*songDomain.Song{{ID: id}}, nil).Once()
	repo.On("GetByID", ctx, id).Return(&songDomain.Song{ID: id}, nil).Once()
	repo.On("Delete", ctx, id).Return(songDomain.ErrSongNotFound).Once()

	songs, err := uc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, songs, 1)

	song, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, song.ID)

	assert.ErrorIs(t, uc.Delete(ctx, id), songDomain.ErrSongNotFound)
	repo.AssertExpectations(t)
}
