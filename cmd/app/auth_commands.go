package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/inventory/cmd/app/commands"
	"github.com/allisson/inventory/internal/app"
	"github.com/allisson/inventory/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "verify-token",
			Usage: "Check a bearer token against the configured JWT secret and print its claims",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Bearer token without the 'Bearer ' prefix",
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

				verifier, err := container.TokenVerifier()
				if err != nil {
					return err
				}

				return commands.RunVerifyToken(
					verifier,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
	}
}
