package domain

import (
	"github.com/allisson/echo/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrSessionNotFound indicates no session row matches the token.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrSessionRequired rejects requests without a live session.
	ErrSessionRequired = errors.NewPublic(errors.ErrUnauthorized, "A valid session is required")

	// ErrAlreadyLoggedIn rejects login attempts that carry a live session.
	ErrAlreadyLoggedIn = errors.NewPublic(errors.ErrForbidden, "Already logged in")

	// ErrAdminRequired rejects non-admin users on admin-only routes.
	ErrAdminRequired = errors.NewPublic(errors.ErrForbidden, "This action requires admin privileges")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.NewPublic(errors.ErrUnauthorized, "Invalid credentials")

	// ErrOwnershipMismatch hides resources owned by another user behind a not-found response.
	ErrOwnershipMismatch = errors.Wrap(errors.ErrNotFound, "resource not owned by caller")
)

// ErrAuthorizationLookup marks storage failures hit while authorizing a request.
// It wraps none of the standard errors, so it renders as a 500.
var ErrAuthorizationLookup = errors.New("authorization lookup failed")
