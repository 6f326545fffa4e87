package domain

import (
	apperrors "github.com/allisson/places/internal/errors"
)

// Location errors.
var (
	// ErrLocationNotFound indicates a location with the specified ID was not found.
	ErrLocationNotFound = apperrors.NewDomainError(
		apperrors.CodeNotFound, "Location not found", apperrors.ErrNotFound,
	)
)
