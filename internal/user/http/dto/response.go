package dto

import (
	"time"

	userDomain "github.com/allisson/places/internal/user/domain"
)

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Location      string    `json:"location,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SessionResponse represents an authenticated session in API responses.
// It carries the token pair and the signed-in user.
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email.String(),
		Username:      user.Username,
		AvatarURL:     user.AvatarURL,
		Bio:           user.Bio,
		Location:      user.Location,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// MapSessionToResponse converts a domain session to an API response.
func MapSessionToResponse(session *userDomain.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		User:         MapUserToResponse(session.User),
	}
}
