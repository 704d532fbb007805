package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the catalog snapshot in canonical form"
}
func (*fmtCmd) Usage() string {
	return `shp fmt

  Loads the catalog and writes it back: prices gain their canonical
  fraction digits and hand-edited quoting or spacing is normalized.
  Rows a load would skip are dropped for good, so check the snapshot
  first if it was edited by hand.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	if err := store.Save(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s (%d products).\n", store.CatalogFile, catalog.Len())
	return subcommands.ExitSuccess
}
