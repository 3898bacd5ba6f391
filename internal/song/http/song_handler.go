// Package http provides HTTP handlers for the song catalog.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/echo/internal/httputil"
	songDomain "github.com/allisson/echo/internal/song/domain"
	"github.com/allisson/echo/internal/song/http/dto"
	songUseCase "github.com/allisson/echo/internal/song/usecase"
	customValidation "github.com/allisson/echo/internal/validation"
)

// SongHandler handles HTTP requests for songs.
type SongHandler struct {
	songUseCase songUseCase.SongUseCase
	logger      *slog.Logger
}

// NewSongHandler creates a new song handler.
func NewSongHandler(songUseCase songUseCase.SongUseCase, logger *slog.Logger) *SongHandler {
	return &SongHandler{
		songUseCase: songUseCase,
		logger:      logger,
	}
}

// ListHandler lists songs with pagination and an optional title filter.
// GET /songs?q=blue&offset=0&limit=50
func (h *SongHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	songs, err := h.songUseCase.List(c.Request.Context(), songDomain.ListFilter{
		Query:  c.Query("q"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSongsToListResponse(songs))
}

// CreateHandler adds a song to the catalog.
// POST /songs - admin only. Returns 201 Created.
func (h *SongHandler) CreateHandler(c *gin.Context) {
	var req dto.SongRequest
	if !h.bindSong(c, &req) {
		return
	}

	song, err := h.songUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSongToResponse(song))
}

// GetHandler returns a song.
// GET /songs/:song_id
func (h *SongHandler) GetHandler(c *gin.Context) {
	songID, err := httputil.ParseUUIDParam(c, "song_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	song, err := h.songUseCase.Get(c.Request.Context(), songID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSongToResponse(song))
}

// UpdateHandler replaces a song.
// PUT /songs/:song_id - admin only.
func (h *SongHandler) UpdateHandler(c *gin.Context) {
	songID, err := httputil.ParseUUIDParam(c, "song_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.SongRequest
	if !h.bindSong(c, &req) {
		return
	}

	song, err := h.songUseCase.Update(c.Request.Context(), songID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSongToResponse(song))
}

// DeleteHandler removes a song.
// DELETE /songs/:song_id - admin only. Returns 204 No Content.
func (h *SongHandler) DeleteHandler(c *gin.Context) {
	songID, err := httputil.ParseUUIDParam(c, "song_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.songUseCase.Delete(c.Request.Context(), songID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *SongHandler) bindSong(c *gin.Context, req *dto.SongRequest) bool {
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
