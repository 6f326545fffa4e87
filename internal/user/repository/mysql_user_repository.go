package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

// MySQLUserRepository implements user persistence for MySQL databases.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQL user repository instance.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// CreateWithPassword inserts a new user and their credential hash.
func (m *MySQLUserRepository) CreateWithPassword(
	ctx context.Context,
	user *domain.User,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, email, username, password_hash, avatar_url, bio, location, email_verified, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email.String(),
		user.Username,
		passwordHash,
		user.AvatarURL,
		user.Bio,
		user.Location,
		user.EmailVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID, or (nil, nil) when absent.
func (m *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, username, avatar_url, bio, location, email_verified, created_at, updated_at
			  FROM users
			  WHERE id = ?`

	rawID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	return scanMySQLUser(querier.QueryRowContext(ctx, query, rawID))
}

// GetByEmail retrieves a user by normalized email, or (nil, nil) when absent.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, username, avatar_url, bio, location, email_verified, created_at, updated_at
			  FROM users
			  WHERE email = ?`

	return scanMySQLUser(querier.QueryRowContext(ctx, query, email))
}

// Update persists the mutable profile fields.
func (m *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET username = ?, avatar_url = ?, bio = ?, location = ?, email_verified = ?, updated_at = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.AvatarURL,
		user.Bio,
		user.Location,
		user.EmailVerified,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// GetPasswordHash retrieves the credential hash for a user.
func (m *MySQLUserRepository) GetPasswordHash(ctx context.Context, userID uuid.UUID) (string, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT password_hash FROM users WHERE id = ?`

	rawID, err := userID.MarshalBinary()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal user id")
	}

	var hash string
	if err := querier.QueryRowContext(ctx, query, rawID).Scan(&hash); err != nil {
		if err == sql.ErrNoRows {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get password hash")
	}
	return hash, nil
}

// UpdatePasswordHash replaces the credential hash for a user.
func (m *MySQLUserRepository) UpdatePasswordHash(
	ctx context.Context,
	userID uuid.UUID,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users SET password_hash = ? WHERE id = ?`

	rawID, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	if _, err := querier.ExecContext(ctx, query, passwordHash, rawID); err != nil {
		return apperrors.Wrap(err, "failed to update password hash")
	}
	return nil
}

func scanMySQLUser(row rowScanner) (*domain.User, error) {
	var (
		user     domain.User
		rawID    []byte
		rawEmail string
	)
	err := row.Scan(
		&rawID,
		&rawEmail,
		&user.Username,
		&user.AvatarURL,
		&user.Bio,
		&user.Location,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if err := user.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil, apperrors.Wrap(err, "stored email is invalid")
	}
	user.Email = email

	return &user, nil
}
