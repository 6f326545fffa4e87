package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

func TestLoginWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}
		session := testSession(t)

		mockAuth.On("SignIn", ctx, "alice@example.com", "Password1").Return(session, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "login", mock.Anything, "success").
			Return().
			Once()

		decorated := NewLoginWithMetrics(NewLoginUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "Password1"})

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}

		mockMetrics.On("RecordOperation", ctx, "user", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "login", mock.Anything, "error").
			Return().
			Once()

		decorated := NewLoginWithMetrics(NewLoginUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx, LoginInput{Email: "not-an-email", Password: "Password1"})

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeInvalidEmail, res.Code())
		mockMetrics.AssertExpectations(t)
	})
}

func TestRegisterWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}
		session := testSession(t)

		mockAuth.On("SignUp", ctx, "alice@example.com", "Password1", "alice").
			Return(session, nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "user", "register", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "register", mock.Anything, "success").
			Return().
			Once()

		decorated := NewRegisterWithMetrics(NewRegisterUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx, RegisterInput{
			Email:    "alice@example.com",
			Password: "Password1",
			Username: "alice",
		})

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})
}

func TestLogoutWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}

		mockAuth.On("SignOut", ctx).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "logout", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "logout", mock.Anything, "success").
			Return().
			Once()

		decorated := NewLogoutWithMetrics(NewLogoutUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx)

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})
}

func TestForgotPasswordWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}

		mockAuth.On("ResetPassword", ctx, "alice@example.com").Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "forgot_password", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "user", "forgot_password", mock.Anything, "success").
			Return().
			Once()

		decorated := NewForgotPasswordWithMetrics(NewForgotPasswordUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx, ForgotPasswordInput{Email: "alice@example.com"})

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})
}

func TestOAuthLoginWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockAuth := &mockAuthPort{}
		mockMetrics := &mockBusinessMetrics{}
		session := testSession(t)

		mockAuth.On("SignInWithOAuth", ctx, domain.ProviderGoogle).Return(session, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "oauth_login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "oauth_login", mock.Anything, "success").
			Return().
			Once()

		decorated := NewOAuthLoginWithMetrics(NewOAuthLoginUseCase(mockAuth), mockMetrics)
		res := decorated.Execute(ctx, domain.ProviderGoogle)

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})
}

func TestGetProfileWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockMetrics := &mockBusinessMetrics{}
		user := testUser(t, "alice")

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "get_profile", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "get_profile", mock.Anything, "success").
			Return().
			Once()

		decorated := NewGetProfileWithMetrics(NewGetProfileUseCase(mockRepo), mockMetrics)
		res := decorated.Execute(ctx, user.ID)

		require.True(t, res.Success())
		mockMetrics.AssertExpectations(t)
	})
}

func TestUpdateProfileWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockMetrics := &mockBusinessMetrics{}
		user := testUser(t, "alice")
		badUsername := "x"

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "user", "update_profile", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "user", "update_profile", mock.Anything, "error").
			Return().
			Once()

		decorated := NewUpdateProfileWithMetrics(NewUpdateProfileUseCase(mockRepo), mockMetrics)
		res := decorated.Execute(ctx, UpdateProfileInput{UserID: user.ID, Username: &badUsername})

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeInvalidUsername, res.Code())
		mockMetrics.AssertExpectations(t)
	})
}
