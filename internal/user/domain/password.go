package domain

import (
	"unicode"

	apperrors "github.com/allisson/places/internal/errors"
)

// MinPasswordLength is the inclusive minimum accepted password length.
const MinPasswordLength = 8

// Password rule descriptions, in evaluation order. The factory cites the first
// violated rule; ValidatePassword returns all of them.
const (
	ruleMinLength = "must be at least 8 characters"
	ruleUppercase = "must contain an uppercase letter"
	ruleLowercase = "must contain a lowercase letter"
	ruleDigit     = "must contain a number"
)

// Password wraps a raw password that satisfied every rule at construction time.
type Password struct {
	raw string
}

// ValidatePassword returns the descriptions of all violated rules, in order.
// An empty slice means the password is acceptable. Never fails.
func ValidatePassword(raw string) []string {
	violations := []string{}
	if len(raw) < MinPasswordLength {
		violations = append(violations, ruleMinLength)
	}
	if !containsRune(raw, unicode.IsUpper) {
		violations = append(violations, ruleUppercase)
	}
	if !containsRune(raw, unicode.IsLower) {
		violations = append(violations, ruleLowercase)
	}
	if !containsRune(raw, unicode.IsDigit) {
		violations = append(violations, ruleDigit)
	}
	return violations
}

// NewPassword validates the raw password against every rule.
// Fails with INVALID_PASSWORD citing the first violated rule.
func NewPassword(raw string) (Password, error) {
	if violations := ValidatePassword(raw); len(violations) > 0 {
		return Password{}, apperrors.Validation(apperrors.CodeInvalidPassword, "password "+violations[0])
	}
	return Password{raw: raw}, nil
}

// Value returns the raw password for hashing at the port boundary.
func (p Password) Value() string {
	return p.raw
}

// Strength describes a password's estimated resistance for UI feedback.
type Strength struct {
	Score int    // 0-4
	Label string // "Very Weak" .. "Very Strong"
	Color string // severity color for the strength meter
}

// GetStrength scores a raw password 0-4: one point each for minimum length,
// mixed case, a digit, and a special character. Pure function; accepts any
// string including ones NewPassword would reject.
func GetStrength(raw string) Strength {
	score := 0
	if len(raw) >= MinPasswordLength {
		score++
	}
	if containsRune(raw, unicode.IsUpper) && containsRune(raw, unicode.IsLower) {
		score++
	}
	if containsRune(raw, unicode.IsDigit) {
		score++
	}
	if containsRune(raw, isSpecialRune) {
		score++
	}

	labels := [...]string{"Very Weak", "Weak", "Medium", "Strong", "Very Strong"}
	colors := [...]string{"danger", "danger", "warning", "success", "success"}

	return Strength{Score: score, Label: labels[score], Color: colors[score]}
}

func containsRune(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}
	return false
}

func isSpecialRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
