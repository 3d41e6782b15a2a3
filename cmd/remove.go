package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/mmoran/flooring"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an order" }
func (*removeCmd) Usage() string {
	return `fm remove <order-number>

  Removes the order from the store and rewrites the order files. The
  removed order number is never reused.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one order number is required.")
		return subcommands.ExitUsageError
	}
	number, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing order number %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	_, store, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, ok := store.Get(number); !ok {
		fmt.Fprintln(os.Stderr, "Error: ", &flooring.NotFoundError{OrderNumber: number})
		return subcommands.ExitFailure
	}

	store.Remove(number)
	if err := saveOrders(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully removed order #%d.\n", number)
	return subcommands.ExitSuccess
}
