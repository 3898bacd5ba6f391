// Package http provides HTTP handlers for favorite songs.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/echo/internal/auth/http"
	"github.com/allisson/echo/internal/favorite/http/dto"
	favoriteUseCase "github.com/allisson/echo/internal/favorite/usecase"
	"github.com/allisson/echo/internal/httputil"
	customValidation "github.com/allisson/echo/internal/validation"
)

// FavoriteHandler handles HTTP requests under /users/:user_id/favorites/songs.
// Every route is restricted to the owner of the path.
type FavoriteHandler struct {
	favoriteUseCase favoriteUseCase.FavoriteUseCase
	logger          *slog.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteUseCase favoriteUseCase.FavoriteUseCase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
		logger:          logger,
	}
}

// ListHandler lists the owner's favorite songs, most recent first.
// GET /users/:user_id/favorites/songs?offset=0&limit=50
func (h *FavoriteHandler) ListHandler(c *gin.Context) {
	userID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	favorites, err := h.favoriteUseCase.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFavoriteSongsToListResponse(favorites))
}

// AddHandler likes a song.
// POST /users/:user_id/favorites/songs - Returns 201, 404 for unknown songs or 409 on duplicates.
func (h *FavoriteHandler) AddHandler(c *gin.Context) {
	userID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	favorite, err := h.favoriteUseCase.Add(c.Request.Context(), userID, req.SongID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFavoriteToResponse(favorite))
}

// RemoveHandler unlikes a song.
// DELETE /users/:user_id/favorites/songs/:song_id - Returns 204 No Content.
func (h *FavoriteHandler) RemoveHandler(c *gin.Context) {
	userID, ok := authHTTP.RequireOwner(c, "user_id", h.logger)
	if !ok {
		return
	}

	songID, err := httputil.ParseUUIDParam(c, "song_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.favoriteUseCase.Remove(c.Request.Context(), userID, songID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
