package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gatekeeper/cmd/app/commands"
	"github.com/allisson/gatekeeper/internal/app"
	"github.com/allisson/gatekeeper/internal/config"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "demo",
			Usage: "Walk through the read-only guard offline",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Enable the parser-based document check in the guarding transport (defaults to GRAPHQL_STRICT)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				guard, err := container.Gatekeeper(domain.MondayCatalogName)
				if err != nil {
					return err
				}

				strict := cfg.GraphQLStrict
				if cmd.IsSet("strict") {
					strict = cmd.Bool("strict")
				}

				return commands.RunDemo(
					ctx,
					guard,
					strict,
					container.PayloadConfig(),
					container.Logger(),
					commands.DefaultIO(),
				)
			},
		},
	}
}
