package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

type mockAlbumRepository struct {
	mock.Mock
}

func (m *mockAlbumRepository) Create(ctx context.Context, album *albumDomain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *mockAlbumRepository) Update(ctx context.Context, album *albumDomain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *mockAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*albumDomain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*albumDomain.Album), args.Error(1)
}

func (m *mockAlbumRepository) List(
	ctx context.Context,
	filter albumDomain.ListFilter,
) ([]*albumDomain.Album, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*albumDomain.Album), args.Error(1)
}

type mockSongLister struct {
	mock.Mock
}

func (m *mockSongLister) ListByAlbum(
	ctx context.Context,
	albumID uuid.UUID,
	offset, limit int,
) ([]*songDomain.Song, error) {
	args := m.Called(ctx, albumID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*songDomain.Song), args.Error(1)
}

type albumFixture struct {
	tx    *mockTxManager
	repo  *mockAlbumRepository
	songs *mockSongLister
	uc    AlbumUseCase
}

func newAlbumFixture() *albumFixture {
	f := &albumFixture{
		tx:    &mockTxManager{},
		repo:  &mockAlbumRepository{},
		songs: &mockSongLister{},
	}
	f.uc = NewAlbumUseCase(f.tx, f.repo, f.songs)
	return f
}

func TestAlbumUseCase_Create(t *testing.T) {
	ctx := context.Background()
	f := newAlbumFixture()

	input := &albumDomain.AlbumInput{Name: "Kind of Blue", ArtistID: uuid.Must(uuid.NewV7())}
	f.repo.On("Create", ctx, mock.MatchedBy(func(a *albumDomain.Album) bool {
		return a.ID != uuid.Nil && a.Name == "Kind of Blue"
	})).Return(nil).Once()

	album, err := f.uc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.ArtistID, album.ArtistID)
	f.repo.AssertExpectations(t)
}

func TestAlbumUseCase_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("Success", func(t *testing.T) {
		f := newAlbumFixture()
		existing := &albumDomain.Album{ID: id, Name: "Old", CreatedAt: createdAt, UpdatedAt: createdAt}

		f.tx.On("WithTx", ctx).Once()
		f.repo.On("GetByID", ctx, id).Return(existing, nil).Once()
		f.repo.On("Update", ctx, mock.MatchedBy(func(a *albumDomain.Album) bool {
			return a.Name == "New" && a.UpdatedAt.After(createdAt)
		})).Return(nil).Once()

		album, err := f.uc.Update(ctx, id, &albumDomain.AlbumInput{Name: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", album.Name)
		f.tx.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := newAlbumFixture()

		f.tx.On("WithTx", ctx).Once()
		f.repo.On("GetByID", ctx, id).Return(nil, albumDomain.ErrAlbumNotFound).Once()

		_, err := f.uc.Update(ctx, id, &albumDomain.AlbumInput{Name: "New"})
		assert.ErrorIs(t, err, albumDomain.ErrAlbumNotFound)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAlbumUseCase_ListSongs(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		f := newAlbumFixture()
		songs := []*songDomain.Song{{ID: uuid.Must(uuid.NewV7()), AlbumID: &id}}

		f.repo.On("GetByID", ctx, id).Return(&albumDomain.Album{ID: id}, nil).Once()
		f.songs.On("ListByAlbum", ctx, id, 0, 50).Return(songs, nil).Once()

		result, err := f.uc.ListSongs(ctx, id, 0, 50)
		require.NoError(t, err)
		assert.Equal(t, songs, result)
	})

	t.Run("Error_AlbumNotFound", func(t *testing.T) {
		f := newAlbumFixture()

		f.repo.On("GetByID", ctx, id).Return(nil, albumDomain.ErrAlbumNotFound).Once()

		_, err := f.uc.ListSongs(ctx, id, 0, 50)
		assert.ErrorIs(t, err, albumDomain.ErrAlbumNotFound)
		f.songs.AssertNotCalled(t, "ListByAlbum", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAlbumUseCase_GetListDelete(t *testing.T) {
	ctx := context.Background()
	f := newAlbumFixture()
	id := uuid.Must(uuid.NewV7())
	filter := albumDomain.ListFilter{Limit: 50}

	f.repo.On("GetByID", ctx, id).Return(&albumDomain.Album{ID: id}, nil).Once()
	f.repo.On("List", ctx, filter).Return([]*albumDomain.Album{}, nil).Once()
	f.repo.On("Delete", ctx, id).Return(nil).Once()

	album, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, album.ID)

	albums, err := f.uc.List(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, albums)

	require.NoError(t, f.uc.Delete(ctx, id))
	f.repo.AssertExpectations(t)
}
