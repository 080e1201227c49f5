package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/AnakAmira/amira-vault/cmd/app/commands"
	"github.com/AnakAmira/amira-vault/internal/app"
	"github.com/AnakAmira/amira-vault/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
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
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBPath)
			},
		},
		{
			Name:  "create-master-key",
			Usage: "Generate a local wrapping key URI for the key store",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateMasterKey(commands.DefaultIO())
			},
		},
	}
}
