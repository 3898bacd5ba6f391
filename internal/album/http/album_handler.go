// Package http provides HTTP handlers for the album catalog.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/album/http/dto"
	albumUseCase "github.com/allisson/echo/internal/album/usecase"
	"github.com/allisson/echo/internal/httputil"
	songDTO "github.com/allisson/echo/internal/song/http/dto"
	customValidation "github.com/allisson/echo/internal/validation"
)

// AlbumHandler handles HTTP requests for albums.
type AlbumHandler struct {
	albumUseCase albumUseCase.AlbumUseCase
	logger       *slog.Logger
}

// NewAlbumHandler creates a new album handler.
func NewAlbumHandler(albumUseCase albumUseCase.AlbumUseCase, logger *slog.Logger) *AlbumHandler {
	return &AlbumHandler{
		albumUseCase: albumUseCase,
		logger:       logger,
	}
}

// ListHandler lists albums with pagination and an optional name filter.
// GET /albums?q=blue&offset=0&limit=50
func (h *AlbumHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	albums, err := h.albumUseCase.List(c.Request.Context(), albumDomain.ListFilter{
		Query:  c.Query("q"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAlbumsToListResponse(albums))
}

// CreateHandler adds an album.
// POST /albums - admin only. Returns 201 Created.
func (h *AlbumHandler) CreateHandler(c *gin.Context) {
	var req dto.AlbumRequest
	if !h.bindAlbum(c, &req) {
		return
	}

	album, err := h.albumUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAlbumToResponse(album))
}

// GetHandler returns an album.
// GET /albums/:album_id
func (h *AlbumHandler) GetHandler(c *gin.Context) {
	albumID, err := httputil.ParseUUIDParam(c, "album_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	album, err := h.albumUseCase.Get(c.Request.Context(), albumID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAlbumToResponse(album))
}

// UpdateHandler replaces an album.
// PUT /albums/:album_id - admin only.
func (h *AlbumHandler) UpdateHandler(c *gin.Context) {
	albumID, err := httputil.ParseUUIDParam(c, "album_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.AlbumRequest
	if !h.bindAlbum(c, &req) {
		return
	}

	album, err := h.albumUseCase.Update(c.Request.Context(), albumID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAlbumToResponse(album))
}

// DeleteHandler removes an album. Its songs stay in the catalog.
// DELETE /albums/:album_id - admin only. Returns 204 No Content.
func (h *AlbumHandler) DeleteHandler(c *gin.Context) {
	albumID, err := httputil.ParseUUIDParam(c, "album_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.albumUseCase.Delete(c.Request.Context(), albumID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListSongsHandler lists the songs of an album.
// GET /albums/:album_id/songs?offset=0&limit=50
func (h *AlbumHandler) ListSongsHandler(c *gin.Context) {
	albumID, err := httputil.ParseUUIDParam(c, "album_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	songs, err := h.albumUseCase.ListSongs(c.Request.Context(), albumID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, songDTO.MapSongsToListResponse(songs))
}

func (h *AlbumHandler) bindAlbum(c *gin.Context, req *dto.AlbumRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}
