// Package mocks provides mock implementations of the album use cases for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	songDomain "github.com/allisson/echo/internal/song/domain"
)

// MockAlbumUseCase is a mock implementation of AlbumUseCase.
type MockAlbumUseCase struct {
	mock.Mock
}

func (m *MockAlbumUseCase) Create(
	ctx context.Context,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*albumDomain.Album), args.Error(1)
}

func (m *MockAlbumUseCase) Get(ctx context.Context, albumID uuid.UUID) (*albumDomain.Album, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*albumDomain.Album), args.Error(1)
}

func (m *MockAlbumUseCase) List(
	ctx context.Context,
	filter albumDomain.ListFilter,
) ([]*albumDomain.Album, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*albumDomain.Album), args.Error(1)
}

func (m *MockAlbumUseCase) Update(
	ctx context.Context,
	albumID uuid.UUID,
	input *albumDomain.AlbumInput,
) (*albumDomain.Album, error) {
	args := m.Called(ctx, albumID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*albumDomain.Album), args.Error(1)
}

func (m *MockAlbumUseCase) Delete(ctx context.Context, albumID uuid.UUID) error {
	args := m.Called(ctx, albumID)
	return args.Error(0)
}

func (m *MockAlbumUseCase) ListSongs(
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
