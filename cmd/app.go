// Package cmd implements the CLI application to manage the shop.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/ocastel/shop"
	"github.com/ocastel/shop/internal/logger"
)

// Register the subcommands.
// A main package calls Register() to declare them, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "products")
	c.Register(&updateCmd{}, "products")
	c.Register(&removeCmd{}, "products")
	c.Register(&listCmd{}, "products")
	c.Register(&searchCmd{}, "products")

	c.Register(&sellCmd{}, "orders")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&lowStockCmd{}, "reports")
	c.Register(&topSellersCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
//
// Flag defaults can be seeded from a .env file (SHOP_CATALOG_FILE,
// SHOP_SALES_FILE, SHOP_RECEIPTS_DIR, SHOP_CURRENCY, SHOP_LOG_LEVEL) so a
// shop directory can pin its own locations.

// Loaded before the flag block below so .env values become flag
// defaults. A missing .env is the normal case, not an error.
var _ = godotenv.Load()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var (
	catalogFile = flag.String("catalog-file", envOr("SHOP_CATALOG_FILE", "products.csv"), "Path to the catalog snapshot file (CSV)")
	salesFile   = flag.String("sales-file", envOr("SHOP_SALES_FILE", "sales.csv"), "Path to the sales ledger file (CSV, append-only)")
	receiptsDir = flag.String("receipts-dir", envOr("SHOP_RECEIPTS_DIR", "receipts"), "Directory for saved receipts")
	currency    = flag.String("currency", envOr("SHOP_CURRENCY", "USD"), "Currency code for prices and totals")
	logLevel    = flag.String("log-level", envOr("SHOP_LOG_LEVEL", "warn"), "Diagnostic log level (debug, info, warn, error)")
)

// openStore builds the Store from the global flags.
func openStore() (*shop.Store, error) {
	log, err := logger.New(*logLevel)
	if err != nil {
		return nil, err
	}
	return shop.NewStore(*catalogFile, *salesFile, *receiptsDir, *currency, log), nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
