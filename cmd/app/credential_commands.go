package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/go-credential/cmd/app/commands"
	"github.com/allisson/go-credential/internal/app"
	"github.com/allisson/go-credential/internal/config"
)

func getCredentialCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a password with the configured algorithm",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to hash (omit for interactive prompt)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunHashPassword(
					ctx,
					credentialUseCase,
					container.Logger(),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "verify-password",
			Usage: "Verify a password against a stored hash",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to verify (omit for interactive prompt)",
				},
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Stored password hash to verify against",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerifyPassword(
					ctx,
					credentialUseCase,
					container.Logger(),
					cmd.String("password"),
					cmd.String("hash"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "inspect-hash",
			Usage: "Inspect the cost and rehash status of a stored hash",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Stored password hash to inspect",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunInspectHash(
					ctx,
					credentialUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("hash"),
					cmd.String("format"),
				)
			},
		},
	}
}
