// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates an external collaborator (backend, network) failed.
	ErrUnavailable = errors.New("unavailable")
)

// Machine-readable error codes carried by DomainError values.
// Validation codes are raised before any port is invoked; the remaining codes
// classify port outcomes at use-case boundaries.
const (
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeInvalidUsername     = "INVALID_USERNAME"
	CodeInvalidCoordinates  = "INVALID_COORDINATES"
	CodeQueryTooShort       = "QUERY_TOO_SHORT"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeEmailRegistered     = "EMAIL_ALREADY_REGISTERED"
	CodeOAuthError          = "OAUTH_ERROR"
	CodeNetworkError        = "NETWORK_ERROR"
	CodeFetchFailed         = "FETCH_FAILED"
	CodeSearchFailed        = "SEARCH_FAILED"
	CodeLogoutError         = "LOGOUT_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodePermissionDenied    = "PERMISSION_DENIED"
	CodePositionUnavailable = "POSITION_UNAVAILABLE"
	CodeTimeout             = "TIMEOUT"
	CodeUnknown             = "UNKNOWN"
	CodeStorageError        = "STORAGE_ERROR"
	CodeUploadFailed        = "UPLOAD_FAILED"
)

// DomainError is a tagged error carrying a machine-readable code alongside a
// human-readable message. It wraps a category sentinel so errors.Is keeps
// working across layers. Immutable once constructed.
type DomainError struct {
	Code     string
	Message  string
	category error
}

// NewDomainError creates a DomainError with the given code and message,
// categorized under the provided sentinel (one of the package-level Err values).
func NewDomainError(code, message string, category error) *DomainError {
	return &DomainError{Code: code, Message: message, category: category}
}

// Validation creates a DomainError categorized as invalid input.
func Validation(code, message string) *DomainError {
	return NewDomainError(code, message, ErrInvalidInput)
}

// Infrastructure creates a DomainError categorized as an unavailable collaborator.
func Infrastructure(code, message string) *DomainError {
	return NewDomainError(code, message, ErrUnavailable)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the category sentinel for errors.Is checks.
func (e *DomainError) Unwrap() error {
	return e.category
}

// AsDomainError extracts a DomainError from err's tree, or nil if none exists.
func AsDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// Coerce converts any port outcome into a DomainError. A DomainError already in
// the tree passes through untouched; anything else is classified under the
// fallback code, keeping the original message when one exists.
func Coerce(err error, fallbackCode, fallbackMessage string) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr := AsDomainError(err); domainErr != nil {
		return domainErr
	}
	message := err.Error()
	if message == "" {
		message = fallbackMessage
	}
	return Infrastructure(fallbackCode, message)
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
