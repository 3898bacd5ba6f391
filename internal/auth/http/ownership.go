package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	"github.com/allisson/echo/internal/httputil"
)

// CheckOwnership returns pathSubjectID when it names the acting user.
//
// A mismatch returns ErrOwnershipMismatch, which renders as 404 so that a non-owner
// cannot tell an existing resource from a missing one. A nil identity is reported as
// ErrSessionRequired.
func CheckOwnership(pathSubjectID string, identity *authDomain.Identity) (string, error) {
	if identity == nil {
		return "", authDomain.ErrSessionRequired
	}
	if pathSubjectID != identity.SubjectID.String() {
		return "", authDomain.ErrOwnershipMismatch
	}
	return pathSubjectID, nil
}

// RequireOwner checks that the path parameter param names the acting user. On failure it
// writes the error response, aborts the chain and returns false.
func RequireOwner(c *gin.Context, param string, logger *slog.Logger) (uuid.UUID, bool) {
	identity, _ := GetIdentity(c.Request.Context())

	subjectID, err := CheckOwnership(c.Param(param), identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, logger)
		c.Abort()
		return uuid.Nil, false
	}

	// The identity's canonical form was matched, so parsing cannot fail.
	return uuid.MustParse(subjectID), true
}

// RequireIdentity returns the acting user. It fails only when a handler is
// mounted outside SessionMiddleware on a route that is not public.
func RequireIdentity(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrSessionRequired, logger)
		c.Abort()
		return uuid.Nil, false
	}
	return identity.SubjectID, true
}
