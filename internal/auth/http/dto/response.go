package dto

import (
	"time"

	authDomain "github.com/allisson/echo/internal/auth/domain"
)

// LoginResponse contains the token of a new session.
type LoginResponse struct {
	Token     string    `json:"token"` //nolint:gosec // returned to its owner on login
	ExpiresAt time.Time `json:"expires_at"`
}

// MapLoginOutputToResponse converts a login result to an API response.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}
}

// SessionResponse represents a session in API responses. The token is never echoed back.
type SessionResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// MapSessionToResponse converts a domain session to an API response.
func MapSessionToResponse(session *authDomain.Session) SessionResponse {
	return SessionResponse{
		ID:        session.ID.String(),
		UserID:    session.UserID.String(),
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}
