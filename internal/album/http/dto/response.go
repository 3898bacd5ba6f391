package dto

import (
	"time"

	albumDomain "github.com/allisson/echo/internal/album/domain"
)

// AlbumResponse represents an album in API responses.
type AlbumResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ArtistID    string    `json:"artist_id"`
	ReleaseYear *int      `json:"release_year"`
	CoverURL    *string   `json:"cover_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListAlbumsResponse represents a page of albums in API responses.
type ListAlbumsResponse struct {
	Data []AlbumResponse `json:"data"`
}

// MapAlbumToResponse converts a domain album to an API response.
func MapAlbumToResponse(album *albumDomain.Album) AlbumResponse {
	return AlbumResponse{
		ID:          album.ID.String(),
		Name:        album.Name,
		ArtistID:    album.ArtistID.String(),
		ReleaseYear: album.ReleaseYear,
		CoverURL:    album.CoverURL,
		CreatedAt:   album.CreatedAt,
		UpdatedAt:   album.UpdatedAt,
	}
}

// MapAlbumsToListResponse converts a slice of domain albums to a list response.
func MapAlbumsToListResponse(albums []*albumDomain.Album) ListAlbumsResponse {
	data := make([]AlbumResponse, 0, len(albums))
	for _, album := range albums {
		data = append(data, MapAlbumToResponse(album))
	}
	return ListAlbumsResponse{Data: data}
}
