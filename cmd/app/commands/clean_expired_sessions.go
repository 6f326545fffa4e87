package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	userService "github.com/allisson/places/internal/user/service"
)

// RunCleanExpiredSessions deletes refresh session records whose expiry is in
// the past. Revoked or abandoned sessions otherwise accumulate until their
// rows are removed. Supports both text and JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredSessions(
	ctx context.Context,
	sessionRepo userService.SessionRepository,
	logger *slog.Logger,
	out io.Writer,
	format string,
) error {
	now := time.Now().UTC()

	logger.Info("cleaning expired sessions")

	count, err := sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	if format == "json" {
		payload := map[string]any{
			"count": count,
		}
		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	} else {
		fmt.Fprintf(out, "Successfully deleted %d expired session(s)\n", count)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}
