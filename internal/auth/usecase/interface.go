// Package usecase defines business logic interfaces for sessions and request authorization.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	userDomain "github.com/allisson/echo/internal/user/domain"
)

// SessionRepository defines persistence operations for sessions.
// Implementations must support transaction-aware operations via context propagation.
type SessionRepository interface {
	// Create stores a new session. The token column is unique.
	Create(ctx context.Context, session *authDomain.Session) error

	// GetByToken retrieves a session by exact token equality. Returns ErrSessionNotFound if not found.
	GetByToken(ctx context.Context, token string) (*authDomain.Session, error)

	// GetByTokenAndUser retrieves a session matching both token and owner.
	GetByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*authDomain.Session, error)

	// DeleteByTokenAndUser removes a session matching both token and owner.
	DeleteByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) error

	// DeleteExpired removes sessions that expired before the given instant, or counts them on dry-run.
	DeleteExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error)
}

// UserRepository is the subset of user persistence needed for login.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// AdminLookup loads a user's admin flag. Returns ErrUserNotFound for missing users.
type AdminLookup interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// SessionUseCase defines session lifecycle operations.
type SessionUseCase interface {
	// Login verifies credentials and creates a new session. Unknown usernames and wrong
	// passwords both return ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Resolve returns the live session for a token, or nil when none exists. Only storage
	// failures are returned as errors, and they never match ErrNotFound or ErrUnauthorized.
	Resolve(ctx context.Context, token string) (*authDomain.Session, error)

	// Current returns the caller's session, looked up by token and owner.
	Current(ctx context.Context, token string, userID uuid.UUID) (*authDomain.Session, error)

	// Logout deletes the caller's session.
	Logout(ctx context.Context, token string, userID uuid.UUID) error

	// CleanupExpired deletes sessions that expired more than days ago.
	CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error)
}

// AdminGate permits or denies admin-only operations for a subject.
type AdminGate interface {
	RequireAdmin(ctx context.Context, subjectID uuid.UUID) error
}
