// Package dto provides data transfer objects for playlist endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
	customValidation "github.com/allisson/echo/internal/validation"
)

// PlaylistRequest contains the fields for POST and PUT on playlists.
type PlaylistRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

// Validate checks the playlist fields.
func (r *PlaylistRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// ToDomain converts the request to a use case input.
func (r *PlaylistRequest) ToDomain() *playlistDomain.PlaylistInput {
	return &playlistDomain.PlaylistInput{
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
	}
}

// AddSongRequest contains the fields for POST /users/{user_id}/playlists/{playlist_id}/songs.
type AddSongRequest struct {
	SongID   uuid.UUID `json:"song_id"`
	Position int       `json:"position"`
}

// Validate checks the song reference and position.
func (r *AddSongRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SongID, validation.By(func(value interface{}) error {
			if id, _ := value.(uuid.UUID); id == uuid.Nil {
				return validation.NewError("validation_required", "cannot be blank")
			}
			return nil
		})),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

// ToDomain converts the request to a use case input.
func (r *AddSongRequest) ToDomain() *playlistDomain.AddSongInput {
	return &playlistDomain.AddSongInput{
		SongID:   r.SongID,
		Position: r.Position,
	}
}
