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

// MySQLSessionRepository implements session record persistence for MySQL databases.
type MySQLSessionRepository struct {
	db *sql.DB
}

// NewMySQLSessionRepository creates a new MySQL session repository instance.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}

// Create inserts a new session record.
func (m *MySQLSessionRepository) Create(ctx context.Context, record *domain.SessionRecord) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO sessions (id, user_id, refresh_token_hash, expires_at, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session id")
	}

	userID, err := record.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
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
func (m *MySQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*domain.SessionRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, refresh_token_hash, expires_at, created_at
			  FROM sessions
			  WHERE refresh_token_hash = ?`

	var (
		record domain.SessionRecord
		id     []byte
		userID []byte
	)
	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&id,
		&userID,
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

	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session id")
	}
	if err := record.UserID.UnmarshalBinary(userID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	return &record, nil
}

// DeleteByTokenHash removes a single session record.
func (m *MySQLSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM sessions WHERE refresh_token_hash = ?`

	if _, err := querier.ExecContext(ctx, query, tokenHash); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// DeleteByUserID removes every session a user holds.
func (m *MySQLSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM sessions WHERE user_id = ?`

	rawID, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	if _, err := querier.ExecContext(ctx, query, rawID); err != nil {
		return apperrors.Wrap(err, "failed to delete user sessions")
	}
	return nil
}

// DeleteExpired removes session records that expired before the cutoff and
// reports how many rows were deleted.
func (m *MySQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM sessions WHERE expires_at < ?`

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
