// Package usecase implements the authentication and account use cases.
// Each use case is a stateless struct taking its ports as constructor
// arguments and exposing a single Execute operation that validates input
// with domain value objects before touching any port, then normalizes every
// port outcome into a Result.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// UnsubscribeFunc detaches an auth-state-change subscriber.
type UnsubscribeFunc func()

// AuthPort is the authentication backend contract consumed by the use cases.
// Implementations may fail with a DomainError (recognized business failure)
// or any other error (infrastructure failure); use cases classify both.
type AuthPort interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, username string) (*domain.Session, error)
	SignInWithOAuth(ctx context.Context, provider domain.OAuthProvider) (*domain.Session, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
	GetSession(ctx context.Context) (*domain.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error)
	OnAuthStateChange(fn func(domain.AuthState)) UnsubscribeFunc
}

// UserRepository defines the profile persistence operations. Account creation
// happens through AuthPort; lookup methods return (nil, nil) when no row exists.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// LoginExecutor defines the interface for the email sign-in use case.
type LoginExecutor interface {
	Execute(ctx context.Context, input LoginInput) result.Result[*domain.Session]
}

// RegisterExecutor defines the interface for the account creation use case.
type RegisterExecutor interface {
	Execute(ctx context.Context, input RegisterInput) result.Result[*domain.Session]
}

// LogoutExecutor defines the interface for the sign-out use case.
type LogoutExecutor interface {
	Execute(ctx context.Context) result.Result[bool]
}

// ForgotPasswordExecutor defines the interface for the password reset use case.
type ForgotPasswordExecutor interface {
	Execute(ctx context.Context, input ForgotPasswordInput) result.Result[bool]
}

// OAuthLoginExecutor defines the interface for the OAuth sign-in use case.
type OAuthLoginExecutor interface {
	Execute(ctx context.Context, provider domain.OAuthProvider) result.Result[*domain.Session]
}

// GetProfileExecutor defines the interface for the profile retrieval use case.
type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uuid.UUID) result.Result[*domain.User]
}

// UpdateProfileExecutor defines the interface for the profile update use case.
type UpdateProfileExecutor interface {
	Execute(ctx context.Context, input UpdateProfileInput) result.Result[*domain.User]
}
