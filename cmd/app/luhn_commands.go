package main

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/allisson/luhn/cmd/app/commands"
	"github.com/allisson/luhn/internal/app"
	"github.com/allisson/luhn/internal/config"
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

func getLuhnCommands(stdout io.Writer) []*cli.Command {
	return []*cli.Command{
		{
			Name:         "check",
			Usage:        "Validate a number with the Luhn checksum",
			ArgsUsage:    "<number>",
			HideHelp:     true,
			OnUsageError: onUsageError,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "separators",
					Aliases: []string{"s"},
					Usage:   "Separator policy: 'strict' (spaces only) or 'lenient' (spaces and hyphens)",
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
				if cmd.IsSet("separators") {
					policy, err := luhnDomain.ParseSeparatorPolicy(cmd.String("separators"))
					if err != nil {
						return err
					}
					cfg.SeparatorPolicy = policy.String()
				}
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				luhnUseCase, err := container.LuhnUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheck(
					ctx,
					luhnUseCase,
					logger,
					stdout,
					cmd.Args().Slice(),
					cfg.SeparatorPolicy,
					cmd.String("format"),
				)
			},
		},
		{
			Name:         "generate",
			Usage:        "Generate Luhn-valid numbers",
			HideHelp:     true,
			OnUsageError: onUsageError,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Number of digits including the check digit (0 samples random values below 10^18)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "How many numbers to generate, one per line",
				},
				&cli.IntFlag{
					Name:  "seed",
					Value: 0,
					Usage: "Seed for a reproducible random source (0 uses GENERATE_SEED or crypto/rand)",
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
				if seed := int(cmd.Int("seed")); seed != 0 {
					cfg.GenerateSeed = seed
				}
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				luhnUseCase, err := container.LuhnUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					luhnUseCase,
					logger,
					stdout,
					cmd.Args().Slice(),
					int(cmd.Int("length")),
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
	}
}
