package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a bearer token to a user. The token column is unique, so at most
// one session row exists per token value.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// IsLive reports whether the session has not expired at the given instant.
// A session without an expiry never expires on its own.
func (s *Session) IsLive(now time.Time) bool {
	if s.ExpiresAt == nil {
		return true
	}
	return now.Before(*s.ExpiresAt)
}

// Claims are the values carried by a verified bearer token.
type Claims struct {
	SubjectID string
	ExpiresAt time.Time
}

// Identity is the acting user of a request, derived from its resolved session.
type Identity struct {
	SubjectID uuid.UUID
}

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}
