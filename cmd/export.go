package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/mmoran/flooring"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every order to a single flat file" }
func (*exportCmd) Usage() string {
	return `fm export [-o <file>]

  Writes every order, regardless of date, into one flat file with the
  order date appended to each record. Any prior export is overwritten.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file. Defaults to <data>/backup/DataExport.txt.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == "" {
		out = filepath.Join(*dataRoot, "backup", "DataExport.txt")
	}

	_, store, err := loadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := flooring.ExportAll(out, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully exported %d orders to %s.\n", store.Len(), out)
	return subcommands.ExitSuccess
}
