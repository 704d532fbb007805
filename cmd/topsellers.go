package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ocastel/shop/renderer"
)

type topSellersCmd struct {
	limit int
}

func (*topSellersCmd) Name() string     { return "topsellers" }
func (*topSellersCmd) Synopsis() string { return "rank products by total quantity sold" }
func (*topSellersCmd) Usage() string {
	return `shp topsellers [-n <limit>]

  Aggregates the quantity sold per product over the whole ledger and
  shows the top entries (default 5). Ties keep first-sold order.
`
}

func (c *topSellersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 5, "Number of products to show.")
}

func (c *topSellersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	printMarkdown(renderer.TopSellers(catalog, store.TopSellers(c.limit)))
	return subcommands.ExitSuccess
}
