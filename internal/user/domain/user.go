package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
)

// usernameRegex allows letters, digits and underscores only.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Username length bounds, inclusive.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

// User is the account aggregate. Instances are only built through NewUser so
// the username invariant always holds; updates produce new values.
type User struct {
	ID            uuid.UUID
	Email         Email
	Username      string
	AvatarURL     string
	Bio           string
	Location      string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUserInput contains the parameters for building a user aggregate.
// CreatedAt/UpdatedAt default to the current time when zero.
type NewUserInput struct {
	ID            uuid.UUID
	Email         Email
	Username      string
	AvatarURL     string
	Bio           string
	Location      string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateUsername reports whether the handle satisfies the length and
// character-set invariant. Never fails.
func ValidateUsername(username string) bool {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return false
	}
	return usernameRegex.MatchString(username)
}

// NewUser builds a validated user aggregate.
// Fails with INVALID_USERNAME when the handle violates the invariant.
func NewUser(input NewUserInput) (*User, error) {
	if !ValidateUsername(input.Username) {
		return nil, apperrors.Validation(
			apperrors.CodeInvalidUsername,
			"username must be 3-20 characters of letters, numbers and underscores",
		)
	}

	now := time.Now().UTC()
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := input.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	return &User{
		ID:            input.ID,
		Email:         input.Email,
		Username:      input.Username,
		AvatarURL:     input.AvatarURL,
		Bio:           input.Bio,
		Location:      input.Location,
		EmailVerified: input.EmailVerified,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

// UpdateProfileInput contains the mutable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	Username  *string
	AvatarURL *string
	Bio       *string
	Location  *string
}

// UpdateProfile returns a new user with the requested fields replaced and
// UpdatedAt refreshed. The receiver is never mutated. A username change is
// validated against the same invariant as construction.
func (u *User) UpdateProfile(input UpdateProfileInput) (*User, error) {
	updated := *u

	if input.Username != nil {
		if !ValidateUsername(*input.Username) {
			return nil, apperrors.Validation(
				apperrors.CodeInvalidUsername,
				"username must be 3-20 characters of letters, numbers and underscores",
			)
		}
		updated.Username = *input.Username
	}
	if input.AvatarURL != nil {
		updated.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		updated.Bio = *input.Bio
	}
	if input.Location != nil {
		updated.Location = *input.Location
	}

	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}

// Initials returns the first two characters of the username, upper-cased,
// for avatar placeholders.
func (u *User) Initials() string {
	runes := []rune(u.Username)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
