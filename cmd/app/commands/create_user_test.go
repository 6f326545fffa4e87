package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/places/internal/user/domain"
)

func testSession(t *testing.T) *userDomain.Session {
	t.Helper()

	email, err := userDomain.NewEmail("carol@example.com")
	require.NoError(t, err)

	user, err := userDomain.NewUser(userDomain.NewUserInput{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    email,
		Username: "carol",
	})
	require.NoError(t, err)

	return &userDomain.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
		User:         user,
	}
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		session := testSession(t)
		authPort := &mockAuthPort{}
		authPort.On("SignUp", ctx, "carol@example.com", "sup3rs3cret", "carol").Return(session, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, authPort, logger, &out, "carol@example.com", "sup3rs3cret", "carol", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully created user carol")
		require.Contains(t, out.String(), session.User.ID.String())
		authPort.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		session := testSession(t)
		authPort := &mockAuthPort{}
		authPort.On("SignUp", ctx, "carol@example.com", "sup3rs3cret", "carol").Return(session, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, authPort, logger, &out, "carol@example.com", "sup3rs3cret", "carol", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"username": "carol"`)
		require.Contains(t, out.String(), session.User.ID.String())
		authPort.AssertExpectations(t)
	})

	t.Run("missing-arguments", func(t *testing.T) {
		authPort := &mockAuthPort{}

		err := RunCreateUser(ctx, authPort, logger, &bytes.Buffer{}, "", "sup3rs3cret", "carol", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "email, password and username are required")
		authPort.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("signup-failure", func(t *testing.T) {
		authPort := &mockAuthPort{}
		authPort.On("SignUp", ctx, "carol@example.com", "sup3rs3cret", "carol").
			Return(nil, userDomain.ErrUserAlreadyExists)

		err := RunCreateUser(ctx, authPort, logger, &bytes.Buffer{}, "carol@example.com", "sup3rs3cret", "carol", "text")

		require.Error(t, err)
		require.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
	})
}
