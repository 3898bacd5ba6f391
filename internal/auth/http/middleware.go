package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	authService "github.com/allisson/echo/internal/auth/service"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	apperrors "github.com/allisson/echo/internal/errors"
	"github.com/allisson/echo/internal/httputil"
	"github.com/allisson/echo/internal/metrics"
)

const bearerPrefix = "bearer "

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively. A missing or malformed header yields "".
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// SessionMiddleware is the single control point that authorizes every request before
// handler dispatch.
//
// The decision process:
//  1. Classify the request by method and path.
//  2. Public routes are forwarded without looking at the token.
//  3. The bearer token is verified and, when non-empty, resolved to a session. The session
//     lookup runs even if verification failed: the session row is authoritative.
//  4. Logged-out-only routes are rejected with 403 when a session resolved, otherwise forwarded.
//  5. Every other class requires a session (401 otherwise). The identity and session are
//     injected into the request context.
//  6. Admin-only routes consult the admin gate (403 for non-admins).
//
// Storage failures during steps 3 and 6 abort with 500 and are never treated as a deny.
// Rejections abort the chain, so no handler runs for a denied request.
func SessionMiddleware(
	routes *authDomain.RouteTable,
	tokenService authService.TokenService,
	sessionUseCase authUseCase.SessionUseCase,
	adminGate authUseCase.AdminGate,
	decisions metrics.AuthDecisionRecorder,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		class := routes.Classify(c.Request.Method, c.Request.URL.Path)

		reject := func(err error) {
			decisions.RecordDecision(ctx, class.String(), decisionOutcome(err))
			httputil.HandleErrorGin(c, err, logger.With(
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("access_class", class.String()),
			))
			c.Abort()
		}
		forward := func() {
			decisions.RecordDecision(ctx, class.String(), metrics.DecisionForwarded)
			c.Next()
		}

		if class == authDomain.AccessPublic {
			forward()
			return
		}

		token := BearerToken(c.Request)
		claims, verified := tokenService.Verify(token)

		session, err := sessionUseCase.Resolve(ctx, token)
		if err != nil {
			reject(err)
			return
		}

		if class == authDomain.AccessLoggedOutOnly {
			if session != nil {
				reject(authDomain.ErrAlreadyLoggedIn)
				return
			}
			forward()
			return
		}

		if session == nil {
			reject(authDomain.ErrSessionRequired)
			return
		}

		ctx = WithIdentity(ctx, &authDomain.Identity{SubjectID: session.UserID})
		ctx = WithSession(ctx, session)
		if verified {
			ctx = WithClaims(ctx, claims)
		}
		c.Request = c.Request.WithContext(ctx)

		if class == authDomain.AccessAdminOnly {
			if err := adminGate.RequireAdmin(ctx, session.UserID); err != nil {
				reject(err)
				return
			}
		}

		forward()
	}
}

func decisionOutcome(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return metrics.DecisionUnauthorized
	case apperrors.Is(err, apperrors.ErrForbidden):
		return metrics.DecisionForbidden
	default:
		return metrics.DecisionError
	}
}
