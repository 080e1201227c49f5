package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/AnakAmira/amira-vault/cmd/app/commands"
	"github.com/AnakAmira/amira-vault/internal/app"
	"github.com/AnakAmira/amira-vault/internal/config"
)

func getFileCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt-file",
			Usage: "Encrypt a file with a stored key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "source",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Path of the plaintext file to encrypt",
				},
				&cli.StringFlag{
					Name:     "dest",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Path to write the encrypted file to",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
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

				return commands.RunEncryptFile(
					ctx,
					useCase,
					commands.DefaultIO(),
					cmd.String("source"),
					cmd.String("dest"),
					cmd.String("key"),
				)
			},
		},
		{
			Name:  "decrypt-file",
			Usage: "Decrypt a file encrypted with encrypt-file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "source",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Path of the encrypted file",
				},
				&cli.StringFlag{
					Name:     "dest",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Path to write the decrypted file to",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Key identifier",
				},
				&cli.StringFlag{
					Name:     "nonce",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Base64-encoded nonce returned by encrypt-file",
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

				return commands.RunDecryptFile(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("source"),
					cmd.String("dest"),
					cmd.String("key"),
					cmd.String("nonce"),
				)
			},
		},
		{
			Name:  "export",
			Usage: "Export an encrypted file as a password-protected portable container",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "source",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Path of the encrypted file to export",
				},
				&cli.StringFlag{
					Name:     "dest",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Path to write the export container to",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Key identifier the file was encrypted with",
				},
				&cli.StringFlag{
					Name:     "nonce",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Base64-encoded nonce returned by encrypt-file",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password protecting the export container",
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

				return commands.RunExport(
					ctx,
					useCase,
					commands.DefaultIO(),
					cmd.String("source"),
					cmd.String("dest"),
					cmd.String("key"),
					cmd.String("nonce"),
					cmd.String("password"),
				)
			},
		},
		{
			Name:  "import",
			Usage: "Import a password-protected export container",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "source",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Path of the export container",
				},
				&cli.StringFlag{
					Name:     "dest",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Path to write the recovered encrypted file to",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password protecting the export container",
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

				return commands.RunImport(
					ctx,
					useCase,
					commands.DefaultIO(),
					cmd.String("source"),
					cmd.String("dest"),
					cmd.String("password"),
				)
			},
		},
		{
			Name:  "checksum",
			Usage: "Compute SHA-256 checksums for one or more files",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "File path (repeat for multiple files)",
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

				return commands.RunChecksum(ctx, useCase, commands.DefaultIO(), cmd.StringSlice("path"))
			},
		},
		{
			Name:  "verify",
			Usage: "Verify a file against an expected SHA-256 checksum",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "File path",
				},
				&cli.StringFlag{
					Name:     "checksum",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Expected SHA-256 checksum (hex)",
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

				return commands.RunVerifyFile(
					ctx,
					useCase,
					commands.DefaultIO(),
					cmd.String("path"),
					cmd.String("checksum"),
				)
			},
		},
	}
}
