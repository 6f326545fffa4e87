package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/places/internal/result"
	userDomain "github.com/allisson/places/internal/user/domain"
	userUseCase "github.com/allisson/places/internal/user/usecase"
)

type mockLoginExecutor struct {
	mock.Mock
}

func (m *mockLoginExecutor) Execute(
	ctx context.Context,
	input userUseCase.LoginInput,
) result.Result[*userDomain.Session] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[*userDomain.Session])
}

type mockRegisterExecutor struct {
	mock.Mock
}

func (m *mockRegisterExecutor) Execute(
	ctx context.Context,
	input userUseCase.RegisterInput,
) result.Result[*userDomain.Session] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[*userDomain.Session])
}

type mockLogoutExecutor struct {
	mock.Mock
}

func (m *mockLogoutExecutor) Execute(ctx context.Context) result.Result[bool] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[bool])
}

type mockForgotPasswordExecutor struct {
	mock.Mock
}

func (m *mockForgotPasswordExecutor) Execute(
	ctx context.Context,
	input userUseCase.ForgotPasswordInput,
) result.Result[bool] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[bool])
}

type mockOAuthLoginExecutor struct {
	mock.Mock
}

func (m *mockOAuthLoginExecutor) Execute(
	ctx context.Context,
	provider userDomain.OAuthProvider,
) result.Result[*userDomain.Session] {
	args := m.Called(ctx, provider)
	return args.Get(0).(result.Result[*userDomain.Session])
}

type mockGetProfileExecutor struct {
	mock.Mock
}

func (m *mockGetProfileExecutor) Execute(
	ctx context.Context,
	userID uuid.UUID,
) result.Result[*userDomain.User] {
	args := m.Called(ctx, userID)
	return args.Get(0).(result.Result[*userDomain.User])
}

type mockUpdateProfileExecutor struct {
	mock.Mock
}

func (m *mockUpdateProfileExecutor) Execute(
	ctx context.Context,
	input userUseCase.UpdateProfileInput,
) result.Result[*userDomain.User] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[*userDomain.User])
}

type mockAuthPort struct {
	mock.Mock
}

func (m *mockAuthPort) SignIn(ctx context.Context, email, password string) (*userDomain.Session, error) {
	args := m.Called(ctx, email, password)
	if session := args.Get(0); session != nil {
		return session.(*userDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthPort) SignUp(ctx context.Context, email, password, username string) (*userDomain.Session, error) {
	args := m.Called(ctx, email, password, username)
	if session := args.Get(0); session != nil {
		return session.(*userDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthPort) SignInWithOAuth(
	ctx context.Context,
	provider userDomain.OAuthProvider,
) (*userDomain.Session, error) {
	args := m.Called(ctx, provider)
	if session := args.Get(0); session != nil {
		return session.(*userDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthPort) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAuthPort) ResetPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthPort) GetSession(ctx context.Context) (*userDomain.Session, error) {
	args := m.Called(ctx)
	if session := args.Get(0); session != nil {
		return session.(*userDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthPort) RefreshSession(ctx context.Context, refreshToken string) (*userDomain.Session, error) {
	args := m.Called(ctx, refreshToken)
	if session := args.Get(0); session != nil {
		return session.(*userDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthPort) OnAuthStateChange(fn func(userDomain.AuthState)) userUseCase.UnsubscribeFunc {
	args := m.Called(fn)
	return args.Get(0).(userUseCase.UnsubscribeFunc)
}
