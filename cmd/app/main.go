// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/places/cmd/app/commands"
	"github.com/allisson/places/internal/app"
	"github.com/allisson/places/internal/config"
	locationUsecase "github.com/allisson/places/internal/location/usecase"
)

const version = "1.0.0"

// runWithContainer loads configuration, builds the DI container, runs fn and
// shuts the container down afterwards.
func runWithContainer(ctx context.Context, fn func(ctx context.Context, container *app.Container) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			container.Logger().Error("failed to shutdown container", slog.Any("error", err))
		}
	}()
	return fn(ctx, container)
}

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Location discovery API",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(
						container.Logger(),
						cfg.DBDriver,
						cfg.DBConnectionString,
					)
				},
			},
			{
				Name:  "create-user",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "Email address",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Password (at least 8 characters)",
					},
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Public username",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWithContainer(ctx, func(ctx context.Context, container *app.Container) error {
						authService, err := container.AuthService()
						if err != nil {
							return err
						}
						return commands.RunCreateUser(
							ctx,
							authService,
							container.Logger(),
							os.Stdout,
							cmd.String("email"),
							cmd.String("password"),
							cmd.String("username"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "seed-locations",
				Usage: "Load locations from a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Required: true,
						Usage:    "Path to the JSON seed file",
					},
					&cli.StringFlag{
						Name:     "created-by",
						Required: true,
						Usage:    "User ID (UUID) to attribute seeded locations to",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWithContainer(ctx, func(ctx context.Context, container *app.Container) error {
						locationRepo, err := container.LocationRepository()
						if err != nil {
							return err
						}
						return commands.RunSeedLocations(
							ctx,
							locationUsecase.NewCreateLocationUseCase(locationRepo),
							container.Logger(),
							os.Stdout,
							cmd.String("file"),
							cmd.String("created-by"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "clean-expired-sessions",
				Usage: "Delete session records that are past their expiry",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWithContainer(ctx, func(ctx context.Context, container *app.Container) error {
						sessionRepo, err := container.SessionRepository()
						if err != nil {
							return err
						}
						return commands.RunCleanExpiredSessions(
							ctx,
							sessionRepo,
							container.Logger(),
							os.Stdout,
							cmd.String("format"),
						)
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
