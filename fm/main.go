package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/mmoran/flooring/cmd"
)

func main() {
	// Shell completion: a no-op outside of a completion request.
	completion().Complete("fm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"list":     {},
			"add":      {},
			"edit":     {},
			"remove":   {},
			"export":   {},
			"products": {},
			"states":   {},
		},
	}
}
