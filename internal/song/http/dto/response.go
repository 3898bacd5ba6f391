package dto

import (
	"time"

	songDomain "github.com/allisson/echo/internal/song/domain"
)

// SongResponse represents a song in API responses.
type SongResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ArtistID        string    `json:"artist_id"`
	AlbumID         *string   `json:"album_id"`
	Genre           *string   `json:"genre"`
	DurationSeconds int       `json:"duration_seconds"`
	AudioURL        string    `json:"audio_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListSongsResponse represents a page of songs in API responses.
type ListSongsResponse struct {
	Data []SongResponse `json:"data"`
}

// MapSongToResponse converts a domain song to an API response.
func MapSongToResponse(song *songDomain.Song) SongResponse {
	var albumID *string
	if song.AlbumID != nil {
		s := song.AlbumID.String()
		albumID = &s
	}

	return SongResponse{
		ID:              song.ID.String(),
		Title:           song.Title,
		ArtistID:        song.ArtistID.String(),
		AlbumID:         albumID,
		Genre:           song.Genre,
		DurationSeconds: song.DurationSeconds,
		AudioURL:        song.AudioURL,
		CreatedAt:       song.CreatedAt,
		UpdatedAt:       song.UpdatedAt,
	}
}

// MapSongsToListResponse converts a slice of domain songs to a list response.
func MapSongsToListResponse(songs []*songDomain.Song) ListSongsResponse {
	data := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		data = append(data, MapSongToResponse(song))
	}
	return ListSongsResponse{Data: data}
}
