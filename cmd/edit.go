package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mmoran/flooring"
	"github.com/mmoran/flooring/renderer"
)

type editCmd struct {
	name    string
	state   string
	product string
	area    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing order and reprice it" }
func (*editCmd) Usage() string {
	return `fm edit <order-number> [-name <customer>] [-state <abbr>] [-product <type>] [-area <sqft>]

  Replaces the given fields of an existing order; omitted flags keep the
  old values. The order date cannot change. All four derived costs are
  recomputed and the order files are rewritten.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New customer name")
	f.StringVar(&c.state, "state", "", "New state abbreviation")
	f.StringVar(&c.product, "product", "", "New product type")
	f.StringVar(&c.area, "area", "", "New area in square feet")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one order number is required.")
		return subcommands.ExitUsageError
	}
	number, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing order number %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	edit := flooring.Edit{
		CustomerName: c.name,
		StateAbbr:    c.state,
		ProductType:  c.product,
	}
	if c.area != "" {
		area, err := decimal.NewFromString(c.area)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing area %q: %v\n", c.area, err)
			return subcommands.ExitUsageError
		}
		edit.Area = &area
	}

	catalog, store, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	order, ok := store.Get(number)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: ", &flooring.NotFoundError{OrderNumber: number})
		return subcommands.ExitFailure
	}

	edited, err := edit.Apply(catalog, order)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		return subcommands.ExitFailure
	}

	store.Add(edited)
	if err := saveOrders(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OrderMarkdown(edited))
	fmt.Printf("✅ Successfully edited order #%d.\n", edited.Number)
	return subcommands.ExitSuccess
}
