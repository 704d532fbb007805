package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/ocastel/shop"
)

type updateCmd struct {
	id    string
	name  string
	price string
	stock int

	stockSet bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change details of an existing product" }
func (*updateCmd) Usage() string {
	return `shp update -id <id> [-name <name>] [-price <price>] [-stock <n>]

  Overwrites the provided fields of an existing product. Omitted fields
  keep their current value. The catalog is persisted either way.

Usage Examples:
$ shp update -id P001 -price 19.90
$ shp update -id P001 -stock 48
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id to update.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.price, "price", "", "New unit price.")
	f.Func("stock", "New stock quantity.", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.stock, c.stockSet = n, true
		return nil
	})
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var u shop.ProductUpdate
	if c.name != "" {
		u.Name = &c.name
	}
	if c.price != "" {
		price, err := shop.ParsePrice(c.price, *currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		u.Price = &price
	}
	if c.stockSet {
		if c.stock < 0 {
			fmt.Fprintln(os.Stderr, "Error: -stock must not be negative.")
			return subcommands.ExitUsageError
		}
		u.Stock = &c.stock
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	msg, err := store.Update(catalog, c.id, u)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
