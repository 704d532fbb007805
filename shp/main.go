package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/ocastel/shop/cmd"
)

func main() {
	// Shell completion: `COMP_INSTALL=1 shp` installs it. This must run
	// before flag.Parse, it exits on its own when invoked by the shell.
	completion().Complete("shp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := func() *complete.Command { return &complete.Command{} }
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add":        sub(),
			"update":     sub(),
			"remove":     sub(),
			"list":       sub(),
			"search":     sub(),
			"sell":       sub(),
			"daily":      sub(),
			"lowstock":   sub(),
			"topsellers": sub(),
			"fmt":        sub(),
			"topic":      sub(),
		},
	}
}
