// Package http provides HTTP handlers for user playlists.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/echo/internal/auth/http"
	"github.com/allisson/echo/internal/httputil"
	playlistDomain "github.com/allisson/echo/internal/playlist/domain"
	"github.com/allisson/echo/internal/playlist/http/dto"
	playlistUseCase "github.com/allisson/echo/internal/playlist/usecase"
	customValidation "github.com/allisson/echo/internal/validation"
)

// PlaylistHandler handles HTTP requests for playlists under /users/:user_id/playlists.
type PlaylistHandler struct {
	playlistUseCase playlistUseCase.PlaylistUseCase
	logger          *slog.Logger
}

// NewPlaylistHandler creates a new playlist handler.
func NewPlaylistHandler(playlistUseCase playlistUseCase.PlaylistUseCase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

// ListHandler lists a user's playlists. Other users only see public ones.
// GET /users/:user_id/playlists?name=focus&offset=0&limit=50
func (h *PlaylistHandler) ListHandler(c *gin.Context) {
	viewerID, ownerID, ok := h.viewerAndOwner(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	playlists, err := h.playlistUseCase.List(c.Request.Context(), viewerID, ownerID, playlistDomain.ListFilter{
		Name:   c.Query("name"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlaylistsToListResponse(playlists))
}

// CreateHandler creates a playlist for the acting user.
// POST /users/:user_id/playlists - owner only. Returns 201 Created.
func (h *PlaylistHandler) CreateHandler(c *gin.Context) {
	ownerID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}

	var req dto.PlaylistRequest
	if !h.bind(c, &req) {
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPlaylistToResponse(playlist))
}

// GetHandler returns a playlist visible to the acting user.
// GET /users/:user_id/playlists/:playlist_id
func (h *PlaylistHandler) GetHandler(c *gin.Context) {
	viewerID, ownerID, ok := h.viewerAndOwner(c)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}

	playlist, err := h.playlistUseCase.Get(c.Request.Context(), viewerID, ownerID, playlistID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlaylistToResponse(playlist))
}

// UpdateHandler replaces a playlist.
// PUT /users/:user_id/playlists/:playlist_id - owner only.
func (h *PlaylistHandler) UpdateHandler(c *gin.Context) {
	ownerID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}

	var req dto.PlaylistRequest
	if !h.bind(c, &req) {
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Request.Context(), ownerID, playlistID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlaylistToResponse(playlist))
}

// DeleteHandler removes a playlist and its entries.
// DELETE /users/:user_id/playlists/:playlist_id - owner only. Returns 204 No Content.
func (h *PlaylistHandler) DeleteHandler(c *gin.Context) {
	ownerID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}

	if err := h.playlistUseCase.Delete(c.Request.Context(), ownerID, playlistID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListSongsHandler lists the songs of a visible playlist ordered by position.
// GET /users/:user_id/playlists/:playlist_id/songs
func (h *PlaylistHandler) ListSongsHandler(c *gin.Context) {
	viewerID, ownerID, ok := h.viewerAndOwner(c)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	songs, err := h.playlistUseCase.ListSongs(c.Request.Context(), viewerID, ownerID, playlistID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlaylistSongsToListResponse(songs))
}

// AddSongHandler adds a song to a playlist.
// POST /users/:user_id/playlists/:playlist_id/songs - owner only. Returns 201, or 409 on duplicates.
func (h *PlaylistHandler) AddSongHandler(c *gin.Context) {
	ownerID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}

	var req dto.AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.playlistUseCase.AddSong(c.Request.Context(), ownerID, playlistID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEntryToResponse(entry))
}

// RemoveSongHandler removes a song from a playlist.
// DELETE /users/:user_id/playlists/:playlist_id/songs/:song_id - owner only. Returns 204.
func (h *PlaylistHandler) RemoveSongHandler(c *gin.Context) {
	ownerID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}
	playlistID, ok := h.playlistID(c)
	if !ok {
		return
	}
	songID, err := httputil.ParseUUIDParam(c, "song_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.playlistUseCase.RemoveSong(c.Request.Context(), ownerID, playlistID, songID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *PlaylistHandler) viewerAndOwner(c *gin.Context) (viewerID, ownerID uuid.UUID, ok bool) {
	viewerID, ok = authHTTP.RequireIdentity(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	ownerID, err := httputil.ParseUUIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return uuid.Nil, uuid.Nil, false
	}
	return viewerID, ownerID, true
}

func (h *PlaylistHandler) playlistID(c *gin.Context) (uuid.UUID, bool) {
	playlistID, err := httputil.ParseUUIDParam(c, "playlist_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return uuid.Nil, false
	}
	return playlistID, true
}

func (h *PlaylistHandler) bind(c *gin.Context, req *dto.PlaylistRequest) bool {
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
