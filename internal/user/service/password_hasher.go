package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/places/internal/errors"
)

// passwordHasher implements PasswordHasher using Argon2id.
type passwordHasher struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordHasher creates a PasswordHasher using the Argon2id Moderate
// policy, balancing security and login latency.
func NewPasswordHasher() PasswordHasher {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}
	return &passwordHasher{hasher: hasher}
}

// Hash hashes a plain text password.
func (p *passwordHasher) Hash(password string) (string, error) {
	hash, err := p.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Verify performs a constant-time comparison between password and hash.
func (p *passwordHasher) Verify(password, hash string) bool {
	ok, err := p.hasher.Verify([]byte(password), hash)
	if err != nil {
		return false
	}
	return ok
}
