package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundkeeper/backend/internal/cli"
	"github.com/google/subcommands"
)

//	@title			Fundkeeper
//	@description	Bank balances earmarked for savings goals
//	@BasePath		/

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
