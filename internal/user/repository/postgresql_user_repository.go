// Package repository implements user and session persistence for PostgreSQL
// and MySQL. Password hashes live beside the user row and never travel on
// the domain entity; lookups return (nil, nil) when no row exists.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

// PostgreSQLUserRepository implements user persistence for PostgreSQL databases.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository instance.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// CreateWithPassword inserts a new user and their credential hash.
func (p *PostgreSQLUserRepository) CreateWithPassword(
	ctx context.Context,
	user *domain.User,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, username, password_hash, avatar_url, bio, location, email_verified, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
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
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, username, avatar_url, bio, location, email_verified, created_at, updated_at
			  FROM users
			  WHERE id = $1`

	return scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by normalized email, or (nil, nil) when absent.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, username, avatar_url, bio, location, email_verified, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	return scanUser(querier.QueryRowContext(ctx, query, email))
}

// Update persists the mutable profile fields.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET username = $1, avatar_url = $2, bio = $3, location = $4, email_verified = $5, updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.AvatarURL,
		user.Bio,
		user.Location,
		user.EmailVerified,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// GetPasswordHash retrieves the credential hash for a user.
func (p *PostgreSQLUserRepository) GetPasswordHash(ctx context.Context, userID uuid.UUID) (string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT password_hash FROM users WHERE id = $1`

	var hash string
	if err := querier.QueryRowContext(ctx, query, userID).Scan(&hash); err != nil {
		if err == sql.ErrNoRows {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get password hash")
	}
	return hash, nil
}

// UpdatePasswordHash replaces the credential hash for a user.
func (p *PostgreSQLUserRepository) UpdatePasswordHash(
	ctx context.Context,
	userID uuid.UUID,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users SET password_hash = $1 WHERE id = $2`

	if _, err := querier.ExecContext(ctx, query, passwordHash, userID); err != nil {
		return apperrors.Wrap(err, "failed to update password hash")
	}
	return nil
}

// rowScanner abstracts *sql.Row for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user     domain.User
		rawEmail string
	)
	err := row.Scan(
		&user.ID,
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

	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil, apperrors.Wrap(err, "stored email is invalid")
	}
	user.Email = email

	return &user, nil
}
