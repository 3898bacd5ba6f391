package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	"github.com/allisson/echo/internal/database"
	apperrors "github.com/allisson/echo/internal/errors"
)

const mysqlSessionColumns = `id, user_id, token, created_at, expires_at`

// MySQLSessionRepository implements Session persistence for MySQL using BINARY(16) UUIDs.
type MySQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session. A duplicate token is reported as ErrConflict.
func (m *MySQLSessionRepository) Create(ctx context.Context, session *authDomain.Session) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO sessions (id, user_id, token, created_at, expires_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session id")
	}

	userID, err := session.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, id, userID, session.Token, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "session token already exists")
		}
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetByToken retrieves a Session by exact token equality. Returns ErrSessionNotFound
// when no row matches.
func (m *MySQLSessionRepository) GetByToken(ctx context.Context, token string) (*authDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlSessionColumns + ` FROM sessions WHERE token = ?`

	return m.scan(querier.QueryRowContext(ctx, query, token))
}

// GetByTokenAndUser retrieves a Session matching both the token and its owner.
func (m *MySQLSessionRepository) GetByTokenAndUser(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) (*authDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT ` + mysqlSessionColumns + ` FROM sessions WHERE token = ? AND user_id = ?`

	return m.scan(querier.QueryRowContext(ctx, query, token, id))
}

// DeleteByTokenAndUser removes the session owned by userID. Returns ErrSessionNotFound
// when nothing was deleted.
func (m *MySQLSessionRepository) DeleteByTokenAndUser(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM sessions WHERE token = ? AND user_id = ?`, token, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return requireAffected(result)
}

// DeleteExpired removes sessions that expired before the given instant, or only
// counts them when dryRun is true.
func (m *MySQLSessionRepository) DeleteExpired(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		var count int64
		err := querier.QueryRowContext(
			ctx,
			`SELECT COUNT(*) FROM sessions WHERE expires_at IS NOT NULL AND expires_at < ?`,
			before,
		).Scan(&count)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired sessions")
		}
		return count, nil
	}

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at < ?`,
		before,
	)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired sessions")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}
	return count, nil
}

func (m *MySQLSessionRepository) scan(row *sql.Row) (*authDomain.Session, error) {
	var session authDomain.Session
	var idBytes []byte
	var userIDBytes []byte

	err := row.Scan(
		&idBytes,
		&userIDBytes,
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	if err := session.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session id")
	}

	if err := session.UserID.UnmarshalBinary(userIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &session, nil
}

// NewMySQLSessionRepository creates a new MySQL Session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
