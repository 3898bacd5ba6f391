package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/album/usecase"
	usecaseMocks "github.com/allisson/echo/internal/album/usecase/mocks"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAlbumUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	tests := []struct {
		name      string
		operation string
		status    string
		setup     func(next *usecaseMocks.MockAlbumUseCase)
		call      func(uc usecase.AlbumUseCase) error
	}{
		{
			name:      "Create success",
			operation: "album_create",
			status:    "success",
			setup: func(next *usecaseMocks.MockAlbumUseCase) {
				next.On("Create", ctx, mock.Anything).Return(&albumDomain.Album{ID: id}, nil).Once()
			},
			call: func(uc usecase.AlbumUseCase) error {
				_, err := uc.Create(ctx, &albumDomain.AlbumInput{})
				return err
			},
		},
		{
			name:      "Get error",
			operation: "album_get",
			status:    "error",
			setup: func(next *usecaseMocks.MockAlbumUseCase) {
				next.On("Get", ctx, id).Return(nil, albumDomain.ErrAlbumNotFound).Once()
			},
			call: func(uc usecase.AlbumUseCase) error {
				_, err := uc.Get(ctx, id)
				return err
			},
		},
		{
			name:      "Delete success",
			operation: "album_delete",
			status:    "success",
			setup: func(next *usecaseMocks.MockAlbumUseCase) {
				next.On("Delete", ctx, id).Return(nil).Once()
			},
			call: func(uc usecase.AlbumUseCase) error {
				return uc.Delete(ctx, id)
			},
		},
		{
			name:      "ListSongs success",
			operation: "album_list_songs",
			status:    "success",
			setup: func(next *usecaseMocks.MockAlbumUseCase) {
				next.On("ListSongs", ctx, id, 0, 50).Return([]*songDomain.Song{}, nil).Once()
			},
			call: func(uc usecase.AlbumUseCase) error {
				_, err := uc.ListSongs(ctx, id, 0, 50)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &usecaseMocks.MockAlbumUseCase{}
			m := &mockBusinessMetrics{}
			tt.setup(next)
			m.On("RecordOperation", ctx, "albums", tt.operation, tt.status).Return().Once()
			m.On("RecordDuration", ctx, "albums", tt.operation, mock.AnythingOfType("time.Duration"), tt.status).
				Return().
				Once()

			err := tt.call(usecase.NewAlbumUseCaseWithMetrics(next, m))
			assert.Equal(t, tt.status == "error", err != nil)
			next.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}
