// Package dto provides data transfer objects for song endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	songDomain "github.com/allisson/echo/internal/song/domain"
	customValidation "github.com/allisson/echo/internal/validation"
)

// SongRequest contains the fields for POST /songs and PUT /songs/{song_id}.
// PUT replaces every field, so omitted optional fields are cleared.
type SongRequest struct {
	Title           string     `json:"title"`
	ArtistID        uuid.UUID  `json:"artist_id"`
	AlbumID         *uuid.UUID `json:"album_id"`
	Genre           *string    `json:"genre"`
	DurationSeconds int        `json:"duration_seconds"`
	AudioURL        string     `json:"audio_url"`
}

// Validate checks the song fields.
func (r *SongRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.ArtistID, validation.By(requireUUID)),
		validation.Field(&r.Genre,
			validation.NilOrNotEmpty,
			validation.Length(1, 100),
		),
		validation.Field(&r.DurationSeconds, validation.Required, validation.Min(1)),
		validation.Field(&r.AudioURL,
			validation.Required,
			customValidation.HTTPURL,
		),
	)
}

// ToDomain converts the request to a use case input.
func (r *SongRequest) ToDomain() *songDomain.SongInput {
	return &songDomain.SongInput{
		Title:           r.Title,
		ArtistID:        r.ArtistID,
		AlbumID:         r.AlbumID,
		Genre:           r.Genre,
		DurationSeconds: r.DurationSeconds,
		AudioURL:        r.AudioURL,
	}
}

func requireUUID(value interface{}) error {
	if id, _ := value.(uuid.UUID); id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
