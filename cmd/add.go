package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mmoran/flooring"
	"github.com/mmoran/flooring/renderer"
)

type addCmd struct {
	name    string
	state   string
	product string
	area    string
	date    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create and price a new order" }
func (*addCmd) Usage() string {
	return `fm add -name <customer> -state <abbr> -product <type> -area <sqft> [-d <date>]

  Validates the input against the catalogs, prices the order, assigns the
  next order number and rewrites the order files:
  - name: customer name (letters, digits, spaces, commas, periods, apostrophes).
  - state: state abbreviation listed in Taxes.txt (e.g., "CA").
  - product: product type listed in Products.txt (e.g., "Carpet").
  - area: area in square feet, at least 100.00.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required)")
	f.StringVar(&c.state, "state", "", "State abbreviation (required)")
	f.StringVar(&c.product, "product", "", "Product type (required)")
	f.StringVar(&c.area, "area", "", "Area in square feet (required)")
	f.StringVar(&c.date, "d", "", "Order date (defaults to today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.state == "" || c.product == "" || c.area == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -state, -product and -area flags are required.")
		return subcommands.ExitUsageError
	}

	area, err := decimal.NewFromString(c.area)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing area %q: %v\n", c.area, err)
		return subcommands.ExitUsageError
	}

	on := flooring.Today()
	if c.date != "" {
		on, err = flooring.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	catalog, store, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	order, err := flooring.NewOrder(catalog, c.name, c.state, c.product, area, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		return subcommands.ExitFailure
	}

	// The number is assigned only once the order is known to be valid.
	order.Number = store.NextOrderNumber()
	store.Add(order)

	if err := saveOrders(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OrderMarkdown(order))
	fmt.Printf("✅ Successfully added order #%d.\n", order.Number)
	return subcommands.ExitSuccess
}
