package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	authService "github.com/allisson/echo/internal/auth/service"
	"github.com/allisson/echo/internal/config"
	apperrors "github.com/allisson/echo/internal/errors"
	userDomain "github.com/allisson/echo/internal/user/domain"
)

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	config          *config.Config
	sessionRepo     SessionRepository
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService

	dummyHashOnce sync.Once
	dummyHash     string
}

// dummyPassword is hashed once and compared against on unknown usernames so that a
// failed login costs one hash comparison whether or not the user exists.
const dummyPassword = "echo-login-placeholder"

func (s *sessionUseCase) compareDummy(password string) {
	s.dummyHashOnce.Do(func() {
		if hash, err := s.passwordService.Hash(dummyPassword); err == nil {
			s.dummyHash = hash
		}
	})
	if s.dummyHash != "" {
		_ = s.passwordService.Compare(password, s.dummyHash)
	}
}

// Login authenticates a user by username and password and opens a new session.
//
// The issued token is signed with the configured secret and stored verbatim in the
// session row; the row is what later requests are authenticated against. Expiration
// comes from Config.SessionExpiration.
func (s *sessionUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			s.compareDummy(input.Password)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordService.Compare(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.config.SessionExpiration)

	token, err := s.tokenService.Issue(user.ID.String(), expiresAt)
	if err != nil {
		return nil, err
	}

	session := &authDomain.Session{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    user.ID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve looks up the live session for a token.
//
// An empty token never reaches storage. Missing rows and rows whose expiry has passed
// both resolve to nil; expired rows are left for the cleanup command. Storage failures
// are wrapped in ErrAuthorizationLookup so they can never be mistaken for "no session".
func (s *sessionUseCase) Resolve(ctx context.Context, token string) (*authDomain.Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, authDomain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", authDomain.ErrAuthorizationLookup, err)
	}

	if !session.IsLive(time.Now().UTC()) {
		return nil, nil
	}

	return session, nil
}

// Current returns the session identified by token that belongs to userID.
func (s *sessionUseCase) Current(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) (*authDomain.Session, error) {
	session, err := s.sessionRepo.GetByTokenAndUser(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	if !session.IsLive(time.Now().UTC()) {
		return nil, authDomain.ErrSessionNotFound
	}

	return session, nil
}

// Logout deletes the session identified by token that belongs to userID.
func (s *sessionUseCase) Logout(ctx context.Context, token string, userID uuid.UUID) error {
	return s.sessionRepo.DeleteByTokenAndUser(ctx, token, userID)
}

// CleanupExpired removes sessions whose expiry is more than days in the past.
// With dryRun set the matching sessions are only counted.
func (s *sessionUseCase) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "days must be non-negative, got %d", days)
	}

	before := time.Now().UTC().AddDate(0, 0, -days)
	return s.sessionRepo.DeleteExpired(ctx, before, dryRun)
}

// NewSessionUseCase creates a new SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	config *config.Config,
	sessionRepo SessionRepository,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) SessionUseCase {
	return &sessionUseCase{
		config:          config,
		sessionRepo:     sessionRepo,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
