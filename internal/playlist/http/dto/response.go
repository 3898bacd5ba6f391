package dto

import (
	"time"

	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
	songDTO "github.com/allisson/echo/internal/song/http/dto"
)

// PlaylistResponse represents a playlist in API responses.
type PlaylistResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListPlaylistsResponse represents a page of playlists in API responses.
type ListPlaylistsResponse struct {
	Data []PlaylistResponse `json:"data"`
}

// EntryResponse represents a song added to a playlist.
type EntryResponse struct {
	PlaylistID string    `json:"playlist_id"`
	SongID     string    `json:"song_id"`
	Position   int       `json:"position"`
	AddedAt    time.Time `json:"added_at"`
}

// PlaylistSongResponse is a song listed in a playlist with its position.
type PlaylistSongResponse struct {
	songDTO.SongResponse
	Position int       `json:"position"`
	AddedAt  time.Time `json:"added_at"`
}

// ListPlaylistSongsResponse represents the songs of a playlist in API responses.
type ListPlaylistSongsResponse struct {
	Data []PlaylistSongResponse `json:"data"`
}

// MapPlaylistToResponse converts a domain playlist to an API response.
func MapPlaylistToResponse(playlist *playlistDomain.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:          playlist.ID.String(),
		UserID:      playlist.UserID.String(),
		Name:        playlist.Name,
		Description: playlist.Description,
		IsPublic:    playlist.IsPublic,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

// MapPlaylistsToListResponse converts a slice of domain playlists to a list response.
func MapPlaylistsToListResponse(playlists []*playlistDomain.Playlist) ListPlaylistsResponse {
	data := make([]PlaylistResponse, 0, len(playlists))
	for _, playlist := range playlists {
		data = append(data, MapPlaylistToResponse(playlist))
	}
	return ListPlaylistsResponse{Data: data}
}

// MapEntryToResponse converts a playlist entry to an API response.
func MapEntryToResponse(entry *playlistDomain.Entry) EntryResponse {
	return EntryResponse{
		PlaylistID: entry.PlaylistID.String(),
		SongID:     entry.SongID.String(),
		Position:   entry.Position,
		AddedAt:    entry.AddedAt,
	}
}

// MapPlaylistSongsToListResponse converts playlist songs to a list response.
func MapPlaylistSongsToListResponse(songs []*playlistDomain.PlaylistSong) ListPlaylistSongsResponse {
	data := make([]PlaylistSongResponse, 0, len(songs))
	for _, ps := range songs {
		data = append(data, PlaylistSongResponse{
			SongResponse: songDTO.MapSongToResponse(ps.Song),
			Position:     ps.Position,
			AddedAt:      ps.AddedAt,
		})
	}
	return ListPlaylistSongsResponse{Data: data}
}
