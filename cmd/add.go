package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ocastel/shop"
)

type addCmd struct {
	id    string
	name  string
	price string
	stock int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addCmd) Usage() string {
	return `shp add -id <id> -name <name> -price <price> [-stock <n>]

  Adds a product with a fresh id and persists the catalog.

Usage Examples:
$ shp add -id P001 -name "Espresso Beans 1kg" -price 18.50 -stock 24
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id, unique within the catalog.")
	f.StringVar(&c.name, "name", "", "Product name.")
	f.StringVar(&c.price, "price", "", "Unit price, e.g. 18.50.")
	f.IntVar(&c.stock, "stock", 0, "Initial stock quantity.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -id, -name and -price are required.")
		return subcommands.ExitUsageError
	}
	price, err := shop.ParsePrice(c.price, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.stock < 0 {
		fmt.Fprintln(os.Stderr, "Error: -stock must not be negative.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	msg, err := store.Add(catalog, c.id, c.name, price, c.stock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
