package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userUsecase "github.com/allisson/places/internal/user/usecase"
)

// RunCreateUser creates a new account through the authentication backend.
// Intended for bootstrapping environments where self-registration is not
// practical. Supports both text and JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	authService userUsecase.AuthPort,
	logger *slog.Logger,
	out io.Writer,
	email, password, username, format string,
) error {
	if email == "" || password == "" || username == "" {
		return fmt.Errorf("email, password and username are required")
	}

	logger.Info("creating user",
		slog.String("email", email),
		slog.String("username", username),
	)

	session, err := authService.SignUp(ctx, email, password, username)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user := session.User

	if format == "json" {
		payload := map[string]any{
			"id":       user.ID.String(),
			"email":    user.Email.String(),
			"username": user.Username,
		}
		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	} else {
		fmt.Fprintf(out, "Successfully created user %s (%s) with id %s\n",
			user.Username, user.Email.String(), user.ID)
	}

	logger.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}
