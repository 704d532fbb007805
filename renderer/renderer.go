// Package renderer formats shop data as markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/ocastel/shop"
	"github.com/ocastel/shop/date"
)

// tableRenderer accumulates markdown output.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *tableRenderer) productTable(products []*shop.Product) {
	r.Printf("| ID | Name | Price | Stock |\n")
	r.Printf("|:---|:---|---:|---:|\n")
	for _, p := range products {
		r.Printf("| %s | %s | %s | %d |\n", p.ID, p.Name, p.Price, p.Stock)
	}
	r.Printf("\n")
}

// Inventory renders the full product listing.
func Inventory(products []*shop.Product) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Catalog\n\n")
	if len(products) == 0 {
		r.Printf("The catalog is empty. Add a product first.\n")
		return r.String()
	}
	r.productTable(products)
	r.Printf("%d product(s).\n", len(products))
	return r.String()
}

// SearchResults renders the products matching a search term.
func SearchResults(term string, products []*shop.Product) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Search %q\n\n", term)
	if len(products) == 0 {
		r.Printf("No product matches %q.\n", term)
		return r.String()
	}
	r.productTable(products)
	r.Printf("%d match(es).\n", len(products))
	return r.String()
}

// LowStock renders the products at or below the stock threshold.
func LowStock(threshold int, products []*shop.Product) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Low Stock (≤ %d)\n\n", threshold)
	if len(products) == 0 {
		r.Printf("All products are above the threshold.\n")
		return r.String()
	}
	r.productTable(products)
	r.Printf("%d product(s) running low.\n", len(products))
	return r.String()
}

// TopSellers renders the quantity ranking. The catalog resolves ids to
// names when it knows them; products sold then removed keep their bare id.
func TopSellers(c *shop.Catalog, ranking []shop.ProductSales) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Top Sellers\n\n")
	if len(ranking) == 0 {
		r.Printf("No sales recorded yet.\n")
		return r.String()
	}
	r.Printf("| # | ID | Name | Quantity Sold |\n")
	r.Printf("|---:|:---|:---|---:|\n")
	for i, e := range ranking {
		name := ""
		if p := c.Get(e.ProductID); p != nil {
			name = p.Name
		}
		r.Printf("| %d | %s | %s | %d |\n", i+1, e.ProductID, name, e.Qty)
	}
	return r.String()
}

// Daily renders the sales total for one day.
//
// The total is the ledger's literal sum: checkouts with several distinct
// items count their bill total once per item line.
func Daily(day date.Date, total shop.Money) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Daily Sales %s\n\n", day)
	r.Printf("Total sales: **%s**\n", total)
	return r.String()
}

// Receipt wraps the fixed-width receipt text in a fenced block so the
// markdown renderer leaves its alignment alone.
func Receipt(text string) string {
	return "```\n" + strings.TrimRight(text, "\n") + "\n```\n"
}
