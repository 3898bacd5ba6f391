package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	apperrors "github.com/allisson/echo/internal/errors"
)

func newMySQLMock(t *testing.T) (*MySQLSessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLSessionRepository(db), mock
}

func mustBinary(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	session := &authDomain.Session{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    uuid.Must(uuid.NewV7()),
		Token:     "token-1",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
			WithArgs(mustBinary(t, session.ID), mustBinary(t, session.UserID), "token-1", session.CreatedAt, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, session))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateToken", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		assert.True(t, apperrors.Is(repo.Create(ctx, session), apperrors.ErrConflict))
	})
}

func TestMySQLSessionRepository_GetByToken(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	createdAt := time.Now().UTC()
	expiresAt := createdAt.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token = ?")).
			WithArgs("token-1").
			WillReturnRows(sessionRows().AddRow(mustBinary(t, id), mustBinary(t, userID), "token-1", createdAt, expiresAt))

		session, err := repo.GetByToken(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
		assert.Equal(t, userID, session.UserID)
		require.NotNil(t, session.ExpiresAt)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token = ?")).
			WillReturnRows(sessionRows())

		_, err := repo.GetByToken(ctx, "missing")
		assert.ErrorIs(t, err, authDomain.ErrSessionNotFound)
	})

	t.Run("Error_InvalidUUIDBytes", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token = ?")).
			WillReturnRows(sessionRows().AddRow([]byte{1, 2}, mustBinary(t, userID), "token-1", createdAt, nil))

		_, err := repo.GetByToken(ctx, "token-1")
		assert.ErrorContains(t, err, "failed to unmarshal session id")
	})
}

func TestMySQLSessionRepository_DeleteByTokenAndUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	repo, mock := newMySQLMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE token = ? AND user_id = ?")).
		WithArgs("token-1", mustBinary(t, userID)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByTokenAndUser(ctx, "token-1", userID))
}

func TestMySQLSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	before := time.Now().UTC()

	repo, mock := newMySQLMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at < ?")).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.DeleteExpired(ctx, before, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
