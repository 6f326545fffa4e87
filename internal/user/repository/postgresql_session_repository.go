package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

// PostgreSQLSessionRepository implements session record persistence for
// PostgreSQL databases. Sessions are looked up by refresh token hash only.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL session repository instance.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}

// Create inserts a new session record.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, record *domain.SessionRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO sessions (id, user_id, refresh_token_hash, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.RefreshTokenHash,
		record.ExpiresAt,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetByTokenHash retrieves a session record by refresh token hash,
// or (nil, nil) when absent.
func (p *PostgreSQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*domain.SessionRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, refresh_token_hash, expires_at, created_at
			  FROM sessions
			  WHERE refresh_token_hash = $1`

	var record domain.SessionRecord
	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&record.ID,
		&record.UserID,
		&record.RefreshTokenHash,
		&record.ExpiresAt,
		&record.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}
	return &record, nil
}

// DeleteByTokenHash removes a single session record.
func (p *PostgreSQLSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM sessions WHERE refresh_token_hash = $1`

	if _, err := querier.ExecContext(ctx, query, tokenHash); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// DeleteByUserID removes every session a user holds.
func (p *PostgreSQLSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM sessions WHERE user_id = $1`

	if _, err := querier.ExecContext(ctx, query, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete user sessions")
	}
	return nil
}

// DeleteExpired removes session records that expired before the cutoff and
// reports how many rows were deleted.
func (p *PostgreSQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM sessions WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired sessions")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count deleted sessions")
	}
	return deleted, nil
}
