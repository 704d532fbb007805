package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/ocastel/shop/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every product in the catalog" }
func (*listCmd) Usage() string {
	return `shp list

  Lists the catalog in its insertion order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	printMarkdown(renderer.Inventory(slices.Collect(catalog.Products())))
	return subcommands.ExitSuccess
}
