// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/places/internal/validation"
)

// RegisterRequest contains the parameters for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// Validate checks if the register request is valid.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 128),
		),
		validation.Field(&r.Username,
			validation.Required,
			customValidation.Username,
			validation.Length(3, 30),
		),
	)
}

// LoginRequest contains the parameters for an email and password sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// ForgotPasswordRequest contains the parameters for a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Validate checks if the forgot password request is valid.
func (r *ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
	)
}

// OAuthLoginRequest contains the parameters for an OAuth provider sign-in.
type OAuthLoginRequest struct {
	Provider string `json:"provider"`
}

// Validate checks if the OAuth login request is valid.
func (r *OAuthLoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Provider,
			validation.Required,
			validation.In("google", "apple", "facebook"),
		),
	)
}

// RefreshSessionRequest contains the parameters for rotating a session.
type RefreshSessionRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate checks if the refresh session request is valid.
func (r *RefreshSessionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RefreshToken,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// UpdateProfileRequest contains the profile fields to change. Absent fields
// keep their current value.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
}

// Validate checks if the update profile request is valid.
func (r *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty,
		),
		validation.Field(&r.Bio,
			validation.Length(0, 500),
		),
		validation.Field(&r.Location,
			validation.Length(0, 120),
		),
	)
}
