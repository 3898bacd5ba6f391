package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	"github.com/allisson/echo/internal/auth/usecase"
	usecaseMocks "github.com/allisson/echo/internal/auth/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectRecord(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "auth", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "auth", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestSessionUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockSessionUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Login success", func(t *testing.T) {
		input := &authDomain.LoginInput{Username: "alice", Password: "secret123"}
		output := &authDomain.LoginOutput{Token: "tok"}

		mockNext.On("Login", ctx, input).Return(output, nil).Once()
		expectRecord(ctx, mockMetrics, "session_login", "success")

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		input := &authDomain.LoginInput{Username: "alice", Password: "bad"}

		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		expectRecord(ctx, mockMetrics, "session_login", "error")

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Resolve success", func(t *testing.T) {
		session := &authDomain.Session{UserID: userID, Token: "tok"}

		mockNext.On("Resolve", ctx, "tok").Return(session, nil).Once()
		expectRecord(ctx, mockMetrics, "session_resolve", "success")

		res, err := uc.Resolve(ctx, "tok")
		assert.NoError(t, err)
		assert.Equal(t, session, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Current success", func(t *testing.T) {
		session := &authDomain.Session{UserID: userID, Token: "tok"}

		mockNext.On("Current", ctx, "tok", userID).Return(session, nil).Once()
		expectRecord(ctx, mockMetrics, "session_current", "success")

		res, err := uc.Current(ctx, "tok", userID)
		assert.NoError(t, err)
		assert.Equal(t, session, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Logout error", func(t *testing.T) {
		expectedErr := errors.New("delete failed")

		mockNext.On("Logout", ctx, "tok", userID).Return(expectedErr).Once()
		expectRecord(ctx, mockMetrics, "session_logout", "error")

		err := uc.Logout(ctx, "tok", userID)
		assert.Equal(t, expectedErr, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CleanupExpired success", func(t *testing.T) {
		mockNext.On("CleanupExpired", ctx, 30, false).Return(int64(4), nil).Once()
		expectRecord(ctx, mockMetrics, "session_cleanup", "success")

		count, err := uc.CleanupExpired(ctx, 30, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		mockMetrics.AssertExpectations(t)
	})
}
