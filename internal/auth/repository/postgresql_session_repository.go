// Package repository provides session persistence for PostgreSQL and MySQL.
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

const pgSessionColumns = `id, user_id, token, created_at, expires_at`

// PostgreSQLSessionRepository implements Session persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session. A duplicate token is reported as ErrConflict.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *authDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO sessions (id, user_id, token, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.Token,
		session.CreatedAt,
		session.ExpiresAt,
	)
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
func (p *PostgreSQLSessionRepository) GetByToken(ctx context.Context, token string) (*authDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgSessionColumns + ` FROM sessions WHERE token = $1`

	return p.scan(querier.QueryRowContext(ctx, query, token))
}

// GetByTokenAndUser retrieves a Session matching both the token and its owner.
func (p *PostgreSQLSessionRepository) GetByTokenAndUser(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) (*authDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgSessionColumns + ` FROM sessions WHERE token = $1 AND user_id = $2`

	return p.scan(querier.QueryRowContext(ctx, query, token, userID))
}

// DeleteByTokenAndUser removes the session owned by userID. Returns ErrSessionNotFound
// when nothing was deleted.
func (p *PostgreSQLSessionRepository) DeleteByTokenAndUser(
	ctx context.Context,
	token string,
	userID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE token = $1 AND user_id = $2`,
		token,
		userID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return requireAffected(result)
}

// DeleteExpired removes sessions that expired before the given instant, or only
// counts them when dryRun is true.
func (p *PostgreSQLSessionRepository) DeleteExpired(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		var count int64
		err := querier.QueryRowContext(
			ctx,
			`SELECT COUNT(*) FROM sessions WHERE expires_at IS NOT NULL AND expires_at < $1`,
			before,
		).Scan(&count)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired sessions")
		}
		return count, nil
	}

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at < $1`,
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

func (p *PostgreSQLSessionRepository) scan(row *sql.Row) (*authDomain.Session, error) {
	var session authDomain.Session

	err := row.Scan(
		&session.ID,
		&session.UserID,
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

	return &session, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return authDomain.ErrSessionNotFound
	}
	return nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL Session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
