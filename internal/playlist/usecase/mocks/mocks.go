// Package mocks provides mock implementations of the playlist use cases for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
)

// MockPlaylistUseCase is a mock implementation of PlaylistUseCase.
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) List(
	ctx context.Context,
	viewerID, ownerID uuid.UUID,
	filter playlistDomain.ListFilter,
) ([]*playlistDomain.Playlist, error) {
	args := m.Called(ctx, viewerID, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*playlistDomain.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlistDomain.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Get(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
) (*playlistDomain.Playlist, error) {
	args := m.Called(ctx, viewerID, ownerID, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlistDomain.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Update(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.PlaylistInput,
) (*playlistDomain.Playlist, error) {
	args := m.Called(ctx, ownerID, playlistID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlistDomain.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	args := m.Called(ctx, ownerID, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistUseCase) ListSongs(
	ctx context.Context,
	viewerID, ownerID, playlistID uuid.UUID,
	offset, limit int,
) ([]*playlistDomain.PlaylistSong, error) {
	args := m.Called(ctx, viewerID, ownerID, playlistID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*playlistDomain.PlaylistSong), args.Error(1)
}

func (m *MockPlaylistUseCase) AddSong(
	ctx context.Context,
	ownerID, playlistID uuid.UUID,
	input *playlistDomain.AddSongInput,
) (*playlistDomain.Entry, error) {
	args := m.Called(ctx, ownerID, playlistID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlistDomain.Entry), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveSong(ctx context.Context, ownerID, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, ownerID, playlistID, songID)
	return args.Error(0)
}
