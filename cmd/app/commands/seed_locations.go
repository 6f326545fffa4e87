package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	locationUsecase "github.com/allisson/places/internal/location/usecase"
)

// seedLocation is the JSON shape of one entry in a seed file.
type seedLocation struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	ImageURL    string  `json:"image_url"`
}

// RunSeedLocations loads locations from a JSON file and registers them through
// the create location use case. The created-by argument attributes the seeded
// rows to an existing user. Supports both text and JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunSeedLocations(
	ctx context.Context,
	createUseCase locationUsecase.CreateLocationExecutor,
	logger *slog.Logger,
	out io.Writer,
	filePath, createdBy, format string,
) error {
	userID, err := uuid.Parse(createdBy)
	if err != nil {
		return fmt.Errorf("invalid created-by id: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []seedLocation
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	logger.Info("seeding locations",
		slog.String("file", filePath),
		slog.Int("entries", len(entries)),
	)

	created := 0
	for i, entry := range entries {
		res := createUseCase.Execute(ctx, locationUsecase.CreateLocationInput{
			Name:        entry.Name,
			Description: entry.Description,
			Category:    entry.Category,
			Latitude:    entry.Latitude,
			Longitude:   entry.Longitude,
			Address:     entry.Address,
			City:        entry.City,
			Country:     entry.Country,
			ImageURL:    entry.ImageURL,
			CreatedBy:   userID,
		})
		if !res.Success() {
			return fmt.Errorf("failed to create location %d (%s): %w", i, entry.Name, res.Err())
		}
		created++
	}

	if format == "json" {
		payload := map[string]any{
			"count": created,
		}
		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	} else {
		fmt.Fprintf(out, "Successfully created %d location(s)\n", created)
	}

	logger.Info("seeding completed", slog.Int("count", created))
	return nil
}
