package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/go-credential/cmd/app/commands"
	"github.com/allisson/go-credential/internal/app"
	"github.com/allisson/go-credential/internal/config"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "random-bytes",
			Usage: "Generate random bytes encoded as lowercase hexadecimal",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "length",
					Aliases:  []string{"l"},
					Required: true,
					Usage:    "Number of random bytes to generate",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunRandomBytes(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("length")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "secure-token",
			Usage: "Generate a secure random token",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "bytes",
					Aliases: []string{"b"},
					Value:   0,
					Usage:   "Number of random bytes behind the token (0 uses the configured default)",
				},
				&cli.StringFlag{
					Name:    "encoding",
					Aliases: []string{"e"},
					Value:   "hex",
					Usage:   "Token encoding: hex, base64url, or uuid",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunSecureToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("bytes")),
					cmd.String("encoding"),
					cmd.String("format"),
				)
			},
		},
	}
}
