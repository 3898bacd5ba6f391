package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/echo/internal/auth/http/dto"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	"github.com/allisson/echo/internal/httputil"
	customValidation "github.com/allisson/echo/internal/validation"
)

// SessionHandler handles login, current session and logout requests.
type SessionHandler struct {
	sessionUseCase authUseCase.SessionUseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionUseCase authUseCase.SessionUseCase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// LoginHandler opens a new session.
// POST /sessions - logged-out only. Returns 201 Created with the token.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.sessionUseCase.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLoginOutputToResponse(output))
}

// CurrentHandler returns the caller's session.
// GET /sessions/current - authenticated.
func (h *SessionHandler) CurrentHandler(c *gin.Context) {
	ctx := c.Request.Context()

	resolved, ok := GetSession(ctx)
	if !ok {
		httputil.HandleErrorGin(c, errSessionMissingFromContext, h.logger)
		return
	}

	session, err := h.sessionUseCase.Current(ctx, resolved.Token, resolved.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// LogoutHandler deletes the caller's session.
// DELETE /sessions/current - authenticated. Returns 204 No Content.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	ctx := c.Request.Context()

	resolved, ok := GetSession(ctx)
	if !ok {
		httputil.HandleErrorGin(c, errSessionMissingFromContext, h.logger)
		return
	}

	if err := h.sessionUseCase.Logout(ctx, resolved.Token, resolved.UserID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
