package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ocastel/shop/renderer"
)

type lowStockCmd struct {
	threshold int
}

func (*lowStockCmd) Name() string     { return "lowstock" }
func (*lowStockCmd) Synopsis() string { return "list products running low on stock" }
func (*lowStockCmd) Usage() string {
	return `shp lowstock [-t <threshold>]

  Lists every product whose stock is at or below the threshold
  (default 5), in catalog order.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.threshold, "t", 5, "Alert threshold.")
}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	printMarkdown(renderer.LowStock(c.threshold, catalog.LowStock(c.threshold)))
	return subcommands.ExitSuccess
}
