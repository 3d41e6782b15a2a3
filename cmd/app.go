// Package cmd implements the CLI application to manage flooring orders.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mmoran/flooring"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "orders")
	c.Register(&addCmd{}, "orders")
	c.Register(&editCmd{}, "orders")
	c.Register(&removeCmd{}, "orders")
	c.Register(&exportCmd{}, "orders")

	c.Register(&productsCmd{}, "catalogs")
	c.Register(&statesCmd{}, "catalogs")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataRoot = flag.String("data", "data", "Path to the data folder holding Taxes.txt, Products.txt and the orders subfolder")

// loadData loads the catalogs and the full order store from the data root.
func loadData() (*flooring.Catalog, *flooring.Store, error) {
	return flooring.LoadAll(*dataRoot)
}

// saveOrders rewrites the date-partitioned order files from the store.
func saveOrders(store *flooring.Store) error {
	return flooring.RewriteAll(*dataRoot, store)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
