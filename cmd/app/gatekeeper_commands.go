package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gatekeeper/cmd/app/commands"
	"github.com/allisson/gatekeeper/internal/app"
	"github.com/allisson/gatekeeper/internal/config"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Operation catalog (defaults to GATEKEEPER_DEFAULT_CATALOG)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withGatekeeper loads configuration, resolves the catalog's gatekeeper and runs fn.
func withGatekeeper(
	ctx context.Context,
	catalog string,
	fn func(container *app.Container, guard usecase.GatekeeperUseCase) error,
) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	guard, err := container.Gatekeeper(catalog)
	if err != nil {
		return err
	}
	return fn(container, guard)
}

func getGatekeeperCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "check-operation",
			Usage:     "Validate one or more operation names against a catalog",
			ArgsUsage: "<operation> [operation...]",
			Flags:     []cli.Flag{catalogFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGatekeeper(ctx, cmd.String("catalog"), func(c *app.Container, guard usecase.GatekeeperUseCase) error {
					return commands.RunCheckOperation(
						ctx,
						guard,
						c.Logger(),
						cmd.Args().Slice(),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "check-query",
			Usage: "Check a GraphQL query for mutations",
			Flags: []cli.Flag{
				catalogFlag(),
				formatFlag(),
				&cli.StringFlag{
					Name:    "query",
					Aliases: []string{"q"},
					Usage:   "GraphQL query text (omit or '-' to read stdin)",
				},
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Also parse the query and reject mutation and subscription operations (defaults to GRAPHQL_STRICT)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGatekeeper(ctx, cmd.String("catalog"), func(c *app.Container, guard usecase.GatekeeperUseCase) error {
					strict := c.Config().GraphQLStrict
					if cmd.IsSet("strict") {
						strict = cmd.Bool("strict")
					}
					return commands.RunCheckQuery(
						ctx,
						guard,
						c.Logger(),
						cmd.String("query"),
						strict,
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "list-operations",
			Usage: "List the read and write operations of a catalog",
			Flags: []cli.Flag{
				catalogFlag(),
				formatFlag(),
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Usage:   "Only list 'read' or 'write' operations",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGatekeeper(ctx, cmd.String("catalog"), func(_ *app.Container, guard usecase.GatekeeperUseCase) error {
					return commands.RunListOperations(guard, cmd.String("kind"), cmd.String("format"), commands.DefaultIO())
				})
			},
		},
		{
			Name:  "filter-tools",
			Usage: "Filter a JSON array of MCP tools down to read operations",
			Flags: []cli.Flag{
				catalogFlag(),
				formatFlag(),
				&cli.StringFlag{
					Name:    "tools",
					Aliases: []string{"t"},
					Usage:   `JSON array like [{"name":"..."}] (omit or '-' to read stdin)`,
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGatekeeper(ctx, cmd.String("catalog"), func(c *app.Container, guard usecase.GatekeeperUseCase) error {
					return commands.RunFilterTools(
						ctx,
						guard,
						c.Logger(),
						cmd.String("tools"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "check-channel",
			Usage: "Check whether a Slack channel may be read",
			Flags: []cli.Flag{
				formatFlag(),
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Slack channel ID (e.g. C0123ABCD)",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   string(domain.ChannelPublic),
					Usage:   "Channel type: public_channel, private_channel, im or mpim",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withGatekeeper(ctx, domain.SlackCatalogName, func(_ *app.Container, guard usecase.GatekeeperUseCase) error {
					return commands.RunCheckChannel(
						ctx,
						guard,
						cmd.String("id"),
						cmd.String("type"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
	}
}
