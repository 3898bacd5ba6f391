// Package mocks provides mock implementations of the song use cases for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	songDomain "github.com/allisson/echo/internal/song/domain"
)

// MockSongUseCase is a mock implementation of SongUseCase.
type MockSongUseCase struct {
	mock.Mock
}

func (m *MockSongUseCase) Create(ctx context.Context, input *songDomain.SongInput) (*songDomain.Song, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*songDomain.Song), args.Error(1)
}

func (m *MockSongUseCase) Get(ctx context.Context, songID uuid.UUID) (*songDomain.Song, error) {
	args := m.Called(ctx, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*songDomain.Song), args.Error(1)
}

func (m *MockSongUseCase) List(ctx context.Context, filter songDomain.ListFilter) ([]*songDomain.Song, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*songDomain.Song), args.Error(1)
}

func (m *MockSongUseCase) Update(
	ctx context.Context,
	songID uuid.UUID,
	input *songDomain.SongInput,
) (*songDomain.Song, error) {
	args := m.Called(ctx, songID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*songDomain.Song), args.Error(1)
}

func (m *MockSongUseCase) Delete(ctx context.Context, songID uuid.UUID) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}
