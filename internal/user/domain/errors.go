package domain

import (
	apperrors "github.com/allisson/places/internal/errors"
)

// User and authentication errors.
var (
	// ErrUserNotFound indicates a user with the specified id or email was not found.
	ErrUserNotFound = apperrors.NewDomainError(
		apperrors.CodeNotFound, "user not found", apperrors.ErrNotFound,
	)

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = apperrors.NewDomainError(
		apperrors.CodeEmailRegistered, "email already registered", apperrors.ErrConflict,
	)

	// ErrInvalidCredentials indicates a sign-in attempt with a wrong email or password.
	// The message is deliberately user-safe and never distinguishes the two.
	ErrInvalidCredentials = apperrors.NewDomainError(
		apperrors.CodeInvalidCredentials, "Invalid email or password", apperrors.ErrUnauthorized,
	)

	// ErrSessionNotFound indicates no active session exists for the caller.
	ErrSessionNotFound = apperrors.NewDomainError(
		apperrors.CodeNotFound, "session not found", apperrors.ErrNotFound,
	)
)
