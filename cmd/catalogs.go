package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmoran/flooring/renderer"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the product catalog" }
func (*productsCmd) Usage() string {
	return `fm products

  Lists every product type with its material and labor cost per square foot.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, _, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(catalog.Products()))
	return subcommands.ExitSuccess
}

type statesCmd struct{}

func (*statesCmd) Name() string     { return "states" }
func (*statesCmd) Synopsis() string { return "list the state tax catalog" }
func (*statesCmd) Usage() string {
	return `fm states

  Lists every state abbreviation with its name and tax rate.
`
}

func (c *statesCmd) SetFlags(f *flag.FlagSet) {}

func (c *statesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, _, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatesMarkdown(catalog.Taxes()))
	return subcommands.ExitSuccess
}
