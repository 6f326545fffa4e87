// Package domain defines the user domain model: self-validating value objects
// for credentials and the user aggregate built from them.
//
// Value objects are immutable after construction. Each exposes a predicate that
// never fails and a validating factory that raises a DomainError with a fixed
// code, so callers can choose validate-then-branch or fail-fast styles.
package domain

import (
	"regexp"
	"strings"

	apperrors "github.com/allisson/places/internal/errors"
)

// emailRegex is a basic email format pattern, intentionally permissive;
// deliverability is the backend's problem.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email wraps a validated, normalized (lower-cased, trimmed) email address.
type Email struct {
	address string
}

// IsValidEmail reports whether the raw string is a well-formed email address.
func IsValidEmail(raw string) bool {
	return emailRegex.MatchString(strings.TrimSpace(raw))
}

// NewEmail validates and normalizes a raw email address.
// Fails with INVALID_EMAIL on malformed input.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidEmail(trimmed) {
		return Email{}, apperrors.Validation(apperrors.CodeInvalidEmail, "invalid email format")
	}
	return Email{address: strings.ToLower(trimmed)}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.address
}

// Equals compares two emails by normalized value.
func (e Email) Equals(other Email) bool {
	return e.address == other.address
}

// IsZero reports whether the email was never constructed through NewEmail.
func (e Email) IsZero() bool {
	return e.address == ""
}
