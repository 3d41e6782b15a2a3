package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmoran/flooring"
	"github.com/mmoran/flooring/renderer"
)

type listCmd struct {
	date string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all orders for a date" }
func (*listCmd) Usage() string {
	return `fm list [-d <date>]

  Lists every order placed on the given date (defaults to today).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Order date (2006-01-02 or MMDDYYYY). Defaults to today.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := flooring.Today()
	if c.date != "" {
		var err error
		on, err = flooring.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	_, store, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OrdersMarkdown(on, store.OrdersOn(on)))
	return subcommands.ExitSuccess
}
