// Package http provides the request interceptor, ownership guard and session handlers.
package http

import (
	"context"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	apperrors "github.com/allisson/echo/internal/errors"
)

// identityKey is a context key type for the resolved request identity.
type identityKey struct{}

// sessionKey is a context key type for the resolved session.
type sessionKey struct{}

// claimsKey is a context key type for verified token claims.
type claimsKey struct{}

// WithIdentity stores the acting user of the request in the context.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the acting user of the request.
// Returns (nil, false) on public and logged-out-only routes.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok && identity != nil
}

// WithSession stores the resolved session in the context.
func WithSession(ctx context.Context, session *authDomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession retrieves the resolved session.
func GetSession(ctx context.Context) (*authDomain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*authDomain.Session)
	return session, ok && session != nil
}

// WithClaims stores verified token claims in the context.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified token claims. Claims are informational only;
// authentication decisions are made on the session.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok && claims != nil
}

// errSessionMissingFromContext means a handler was mounted outside SessionMiddleware.
var errSessionMissingFromContext = apperrors.New("session missing from request context")
