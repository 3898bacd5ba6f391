package dto

import (
	"time"

	favoriteDomain "github.com/allisson/echo/internal/favorite/domain"
	songDTO "github.com/allisson/echo/internal/song/http/dto"
)

// FavoriteResponse represents a newly added favorite.
type FavoriteResponse struct {
	UserID  string    `json:"user_id"`
	SongID  string    `json:"song_id"`
	AddedAt time.Time `json:"added_at"`
}

// FavoriteSongResponse is a favorite song with the time it was liked.
type FavoriteSongResponse struct {
	songDTO.SongResponse
	AddedAt time.Time `json:"added_at"`
}

// ListFavoriteSongsResponse represents a page of favorite songs.
type ListFavoriteSongsResponse struct {
	Data []FavoriteSongResponse `json:"data"`
}

// MapFavoriteToResponse converts a domain favorite to an API response.
func MapFavoriteToResponse(favorite *favoriteDomain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		UserID:  favorite.UserID.String(),
		SongID:  favorite.SongID.String(),
		AddedAt: favorite.AddedAt,
	}
}

// MapFavoriteSongsToListResponse converts favorite songs to a list response.
func MapFavoriteSongsToListResponse(favorites []*favoriteDomain.FavoriteSong) ListFavoriteSongsResponse {
	data := make([]FavoriteSongResponse, 0, len(favorites))
	for _, f := range favorites {
		data = append(data, FavoriteSongResponse{
			SongResponse: songDTO.MapSongToResponse(f.Song),
			AddedAt:      f.AddedAt,
		})
	}
	return ListFavoriteSongsResponse{Data: data}
}
