package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	"github.com/allisson/echo/internal/metrics"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sessionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	s.metrics.RecordOperation(ctx, "auth", operation, status)
	s.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Login records metrics for login operations.
func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, input)
	s.record(ctx, "session_login", start, err)
	return output, err
}

// Resolve records metrics for session resolution on every authenticated request.
func (s *sessionUseCaseWithMetrics) Resolve(ctx context.Context, token string) (*authDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Resolve(ctx, token)
	s.record(ctx, "session_resolve", start, err)
	return session, err
}

// Current records metrics for current session lookups.
func (s *sessionUseCaseWithMetrics) Current(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) (*authDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Current(ctx, token, userID)
	s.record(ctx, "session_current", start, err)
	return session, err
}

// Logout records metrics for logout operations.
func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, token string, userID uuid.UUID) error {
	start := time.Now()
	err := s.next.Logout(ctx, token, userID)
	s.record(ctx, "session_logout", start, err)
	return err
}

// CleanupExpired records metrics for expired session cleanup.
func (s *sessionUseCaseWithMetrics) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := s.next.CleanupExpired(ctx, days, dryRun)
	s.record(ctx, "session_cleanup", start, err)
	return count, err
}
