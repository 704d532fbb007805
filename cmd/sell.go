package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/ocastel/shop"
	"github.com/ocastel/shop/renderer"
)

type sellCmd struct {
	items    itemsFlag
	discount string
	save     bool
	saveCSV  bool
}

// itemsFlag collects repeated -item id=qty pairs in order.
type itemsFlag []struct {
	id  string
	qty int
}

func (i *itemsFlag) String() string { return fmt.Sprintf("%d item(s)", len(*i)) }

func (i *itemsFlag) Set(v string) error {
	id, qtyStr, ok := strings.Cut(v, "=")
	if !ok || id == "" {
		return fmt.Errorf("want id=qty, got %q", v)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		return fmt.Errorf("invalid quantity in %q: want a positive integer", v)
	}
	*i = append(*i, struct {
		id  string
		qty int
	}{id, qty})
	return nil
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "check out a cart: receipt, stock, ledger" }
func (*sellCmd) Usage() string {
	return `shp sell -item <id>=<qty> [-item ...] [-discount <pct>] [-save | -save-csv]

  Completes a sale: renders the receipt at current catalog prices,
  reduces stock line by line, appends the sale to the ledger, and
  optionally saves the receipt to a timestamp-named file.

Usage Examples:
$ shp sell -item P001=2 -item P014=1 -discount 10 -save
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.items, "item", "Cart line as id=qty. Repeatable; repeated ids accumulate.")
	f.StringVar(&c.discount, "discount", "", "Discount percentage on the subtotal (0-100).")
	f.BoolVar(&c.save, "save", false, "Save the receipt as plain text.")
	f.BoolVar(&c.saveCSV, "save-csv", false, "Save the receipt as row-per-line CSV.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -item id=qty is required.")
		return subcommands.ExitUsageError
	}

	discount := decimal.Zero
	if c.discount != "" {
		var err error
		discount, err = decimal.NewFromString(c.discount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid discount %q: %v\n", c.discount, err)
			return subcommands.ExitUsageError
		}
		if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
			fmt.Fprintln(os.Stderr, "Error: -discount must be between 0 and 100.")
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	cart := shop.NewCart()
	for _, it := range c.items {
		if catalog.Get(it.id) == nil {
			fmt.Fprintf(os.Stderr, "Error: no product %q in the catalog.\n", it.id)
			return subcommands.ExitFailure
		}
		cart.Add(it.id, it.qty)
	}

	result, err := store.Checkout(catalog, cart, shop.CheckoutOptions{
		DiscountPercent: discount,
		SaveReceipt:     c.save || c.saveCSV,
		ReceiptCSV:      c.saveCSV,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(result.Receipt.Text))
	for _, issue := range result.StockIssues {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", issue)
	}
	fmt.Printf("Sale %s recorded, total %s.\n", result.SaleID, result.Receipt.Total)
	if result.ReceiptPath != "" {
		fmt.Printf("Receipt saved as %s\n", result.ReceiptPath)
	}
	return subcommands.ExitSuccess
}
