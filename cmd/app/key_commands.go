package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/AnakAmira/amira-vault/cmd/app/commands"
	"github.com/AnakAmira/amira-vault/internal/app"
	"github.com/AnakAmira/amira-vault/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate a new encryption key in the key store",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "identifier",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Key identifier (e.g., journal-entries)",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
				},
				&cli.BoolFlag{
					Name:  "require-user-presence",
					Value: false,
					Usage: "Mark the key as requiring user presence before use",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.VaultUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunGenerateKey(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("identifier"),
					cmd.String("algorithm"),
					cmd.Bool("require-user-presence"),
				)
			},
		},
		{
			Name:  "delete-key",
			Usage: "Delete an encryption key from the key store",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "identifier",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Key identifier",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.VaultUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunDeleteKey(ctx, useCase, container.Logger(), cmd.String("identifier"))
			},
		},
	}
}
