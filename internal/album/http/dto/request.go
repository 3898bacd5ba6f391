// Package dto provides data transfer objects for album endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	customValidation "github.com/allisson/echo/internal/validation"
)

// AlbumRequest contains the fields for POST /albums and PUT /albums/{album_id}.
type AlbumRequest struct {
	Name        string    `json:"name"`
	ArtistID    uuid.UUID `json:"artist_id"`
	ReleaseYear *int      `json:"release_year"`
	CoverURL    *string   `json:"cover_url"`
}

// Validate checks the album fields.
func (r *AlbumRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.ArtistID, validation.By(func(value interface{}) error {
			if id, _ := value.(uuid.UUID); id == uuid.Nil {
				return validation.NewError("validation_required", "cannot be blank")
			}
			return nil
		})),
		validation.Field(&r.ReleaseYear, validation.Min(1000), validation.Max(9999)),
		validation.Field(&r.CoverURL,
			validation.NilOrNotEmpty,
			customValidation.HTTPURL,
		),
	)
}

// ToDomain converts the request to a use case input.
func (r *AlbumRequest) ToDomain() *albumDomain.AlbumInput {
	return &albumDomain.AlbumInput{
		Name:        r.Name,
		ArtistID:    r.ArtistID,
		ReleaseYear: r.ReleaseYear,
		CoverURL:    r.CoverURL,
	}
}
