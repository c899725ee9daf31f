// Package main provides the entry point for the luhn command line tool.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/allisson/luhn/cmd/app/commands"
	apperrors "github.com/allisson/luhn/internal/errors"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCommand builds the command tree. Results are written to stdout.
// Help is hidden so that help requests fall through to the usage message.
func newRootCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "luhn",
		Usage:           "Validate and generate Luhn checksummed numbers",
		Version:         version,
		Writer:          stdout,
		Commands:        getCommands(stdout),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		// Reached with no subcommand, an unknown one, or "help"
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return apperrors.ErrUsage
		},
	}
}

func main() {
	stdout := commands.DefaultIO().Writer
	cmd := newRootCommand(stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cmd.Run(ctx, os.Args)
	if apperrors.Is(err, apperrors.ErrUsage) {
		commands.RunUsage(stdout, os.Args[0])
		return
	}
	if err != nil {
		slog.Error("application error", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

// onUsageError turns flag parsing failures into the usage message.
func onUsageError(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
	return apperrors.ErrUsage
}
