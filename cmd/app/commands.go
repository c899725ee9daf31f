package main

import (
	"io"

	"github.com/urfave/cli/v3"
)

func getCommands(stdout io.Writer) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getLuhnCommands(stdout)...)
	return cmds
}
