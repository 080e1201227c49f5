package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/AnakAmira/amira-vault/cmd/app/commands"
	authService "github.com/AnakAmira/amira-vault/internal/auth/service"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-token",
			Usage: "Generate an API access token and its Argon2id hash",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "token",
					Aliases: []string{"t"},
					Value:   "",
					Usage:   "Existing token to hash (omit to generate a new one)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashToken(
					authService.NewTokenService(),
					commands.DefaultIO(),
					cmd.String("token"),
				)
			},
		},
	}
}
