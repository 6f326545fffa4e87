package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/storage"
	"github.com/allisson/places/internal/user/domain"
	"github.com/allisson/places/internal/user/usecase"
)

const (
	// resetTokenTTL bounds how long a password-reset token stays redeemable.
	resetTokenTTL = 30 * time.Minute

	resetTokenKeyPrefix = "password-reset:"
)

// Auth state events delivered to subscribers.
const (
	EventSignedIn       = "SIGNED_IN"
	EventSignedOut      = "SIGNED_OUT"
	EventTokenRefreshed = "TOKEN_REFRESHED"
)

// AuthService implements the auth port over the user and session
// repositories: Argon2id credentials, JWT sessions with hashed refresh
// tokens, and an in-process auth-state-change subscription.
type AuthService struct {
	txManager   database.TxManager
	userRepo    UserRepository
	sessionRepo SessionRepository
	hasher      PasswordHasher
	tokens      TokenService
	store       storage.Store
	logger      *slog.Logger

	mu          sync.Mutex
	nextSubID   int
	subscribers map[int]func(domain.AuthState)
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	txManager database.TxManager,
	userRepo UserRepository,
	sessionRepo SessionRepository,
	hasher PasswordHasher,
	tokens TokenService,
	store storage.Store,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		store:       store,
		logger:      logger,
		subscribers: make(map[int]func(domain.AuthState)),
	}
}

// SignIn verifies the credentials and issues a session. Unknown emails and
// wrong passwords both surface ErrInvalidCredentials so the two cannot be
// told apart.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.userRepo.GetPasswordHash(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load credentials")
	}
	if !s.hasher.Verify(password, hash) {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.notify(domain.AuthState{Event: EventSignedIn, Session: session})
	return session, nil
}

// SignUp registers a new account and signs it in. Duplicate emails surface
// ErrUserAlreadyExists.
func (s *AuthService) SignUp(ctx context.Context, email, password, username string) (*domain.Session, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check email availability")
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	emailVO, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(domain.NewUserInput{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    emailVO,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	var session *domain.Session
	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.CreateWithPassword(ctx, user, hash); err != nil {
			if database.IsUniqueViolation(err) {
				return domain.ErrUserAlreadyExists
			}
			return apperrors.Wrap(err, "failed to create user")
		}
		session, err = s.issueSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	s.notify(domain.AuthState{Event: EventSignedIn, Session: session})
	return session, nil
}

// SignInWithOAuth signs in with a provider-verified identity carried in the
// context. First-time identities get an account created on the fly.
func (s *AuthService) SignInWithOAuth(
	ctx context.Context,
	provider domain.OAuthProvider,
) (*domain.Session, error) {
	if !provider.IsValid() {
		return nil, apperrors.NewDomainError(
			apperrors.CodeOAuthError,
			fmt.Sprintf("unsupported oauth provider %q", provider),
			apperrors.ErrInvalidInput,
		)
	}

	identity, ok := OAuthIdentityFromContext(ctx)
	if !ok || identity.Provider != provider {
		return nil, apperrors.NewDomainError(
			apperrors.CodeOAuthError,
			"missing verified oauth identity",
			apperrors.ErrUnauthorized,
		)
	}

	user, err := s.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		user, err = s.provisionOAuthUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.notify(domain.AuthState{Event: EventSignedIn, Session: session})
	return session, nil
}

// SignOut revokes every session of the calling user and notifies
// subscribers. The caller is identified by the bearer token in ctx.
func (s *AuthService) SignOut(ctx context.Context) error {
	token, ok := AccessTokenFromContext(ctx)
	if !ok {
		return domain.ErrSessionNotFound
	}
	claims, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		return domain.ErrSessionNotFound
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, claims.UserID); err != nil {
		return apperrors.Wrap(err, "failed to revoke sessions")
	}

	s.notify(domain.AuthState{Event: EventSignedOut})
	return nil
}

// ResetPassword stores a single-use reset token for the account. Unknown
// emails succeed silently; callers cannot probe for registered addresses.
// Token delivery belongs to the notification pipeline, not this service.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return apperrors.Wrap(err, "failed to generate reset token")
	}
	token := base64.URLEncoding.EncodeToString(randomBytes)

	key := resetTokenKeyPrefix + s.tokens.HashRefreshToken(token)
	if res := s.store.Set(ctx, key, []byte(user.ID.String()), resetTokenTTL); !res.Success() {
		return res.Err()
	}

	s.logger.Info("password reset token issued",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetSession rebuilds the caller's session view from the bearer token in ctx.
// The refresh token is never returned here; it only travels on issuance.
func (s *AuthService) GetSession(ctx context.Context) (*domain.Session, error) {
	token, ok := AccessTokenFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	claims, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{AccessToken: token, User: user}, nil
}

// RefreshSession rotates a refresh token: the presented token's record is
// deleted and a fresh pair is issued, so a token can only be redeemed once.
func (s *AuthService) RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	tokenHash := s.tokens.HashRefreshToken(refreshToken)
	record, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load session")
	}
	if record == nil || record.IsExpired() || record.UserID != claims.UserID {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.userRepo.GetByID(ctx, record.UserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil, domain.ErrSessionNotFound
	}

	var session *domain.Session
	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			return apperrors.Wrap(err, "failed to rotate session")
		}
		session, err = s.issueSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(domain.AuthState{Event: EventTokenRefreshed, Session: session})
	return session, nil
}

// OnAuthStateChange registers fn for auth-state notifications and returns
// its unsubscribe function. Unsubscribing twice is harmless.
func (s *AuthService) OnAuthStateChange(fn func(domain.AuthState)) usecase.UnsubscribeFunc {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	record := &domain.SessionRecord{
		ID:               uuid.Must(uuid.NewV7()),
		UserID:           user.ID,
		RefreshTokenHash: s.tokens.HashRefreshToken(pair.RefreshToken),
		ExpiresAt:        pair.RefreshExpiresAt,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, record); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist session")
	}

	return &domain.Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExpiresAt,
		User:         user,
	}, nil
}

func (s *AuthService) provisionOAuthUser(ctx context.Context, identity OAuthIdentity) (*domain.User, error) {
	emailVO, err := domain.NewEmail(identity.Email)
	if err != nil {
		return nil, err
	}

	username := identity.Username
	if !domain.ValidateUsername(username) {
		username = generatedUsername()
	}

	user, err := domain.NewUser(domain.NewUserInput{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    emailVO,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	// OAuth accounts carry an unguessable placeholder credential; password
	// sign-in stays impossible until the user sets one via reset.
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate placeholder credential")
	}
	hash, err := s.hasher.Hash(base64.URLEncoding.EncodeToString(randomBytes))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateWithPassword(ctx, user, hash); err != nil {
		return nil, apperrors.Wrap(err, "failed to create user")
	}
	return user, nil
}

func (s *AuthService) notify(state domain.AuthState) {
	s.mu.Lock()
	subscribers := make([]func(domain.AuthState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

func generatedUsername() string {
	// 20 chars max for the username invariant: "user_" + 12 hex chars.
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "user_" + hex[:12]
}

var _ usecase.AuthPort = (*AuthService)(nil)
