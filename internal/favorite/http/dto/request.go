// Package dto provides data transfer objects for favorite endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// AddFavoriteRequest contains the fields for POST /users/{user_id}/favorites/songs.
type AddFavoriteRequest struct {
	SongID uuid.UUID `json:"song_id"`
}

// Validate checks that a song is referenced.
func (r *AddFavoriteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SongID, validation.By(func(value interface{}) error {
			if id, _ := value.(uuid.UUID); id == uuid.Nil {
				return validation.NewError("validation_required", "cannot be blank")
			}
			return nil
		})),
	)
}
