package httputil

import (
	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/echo/internal/errors"
)

const (
	// DefaultLimit is the page size used when the limit query parameter is omitted.
	DefaultLimit = 50
	// MaxLimit is the largest page size a client may request.
	MaxLimit = 100
)

// Page holds the offset and limit query parameters of list endpoints.
type Page struct {
	Offset int `form:"offset,default=0" json:"offset"`
	Limit  int `form:"limit,default=50" json:"limit"`
}

// Validate checks that offset is non-negative and limit is within [1, MaxLimit].
func (p *Page) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Required, validation.Min(1), validation.Max(MaxLimit)),
	)
}

// ParsePagination binds and validates offset and limit. Errors wrap ErrInvalidInput.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	var page Page
	if err := c.ShouldBindQuery(&page); err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset and limit must be integers")
	}
	if err := page.Validate(); err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}
	return page.Offset, page.Limit, nil
}
