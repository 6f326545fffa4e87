package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	locationDomain "github.com/allisson/places/internal/location/domain"
	locationUsecase "github.com/allisson/places/internal/location/usecase"
	"github.com/allisson/places/internal/result"
	userDomain "github.com/allisson/places/internal/user/domain"
	userUsecase "github.com/allisson/places/internal/user/usecase"
)

type mockAuthPort struct {
	mock.Mock
}

func (m *mockAuthPort) SignIn(ctx context.Context, email, password string) (*userDomain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.Session), args.Error(1)
}

func (m *mockAuthPort) SignUp(ctx context.Context, email, password, username string) (*userDomain.Session, error) {
	args := m.Called(ctx, email, password, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.Session), args.Error(1)
}

func (m *mockAuthPort) SignInWithOAuth(ctx context.Context, provider userDomain.OAuthProvider) (*userDomain.Session, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.Session), args.Error(1)
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.Session), args.Error(1)
}

func (m *mockAuthPort) RefreshSession(ctx context.Context, refreshToken string) (*userDomain.Session, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.Session), args.Error(1)
}

func (m *mockAuthPort) OnAuthStateChange(fn func(userDomain.AuthState)) userUsecase.UnsubscribeFunc {
	args := m.Called(fn)
	return args.Get(0).(userUsecase.UnsubscribeFunc)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, record *userDomain.SessionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*userDomain.SessionRecord, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.SessionRecord), args.Error(1)
}

func (m *mockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockCreateLocationExecutor struct {
	mock.Mock
}

func (m *mockCreateLocationExecutor) Execute(
	ctx context.Context,
	input locationUsecase.CreateLocationInput,
) result.Result[*locationDomain.Location] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[*locationDomain.Location])
}
