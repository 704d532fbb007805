package shop

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the rendered outcome of a cart: the printable text plus the
// computed amounts. It is ephemeral; persisting it is the caller's call.
type Receipt struct {
	Text     string
	Subtotal Money
	Discount Money
	Total    Money
}

const receiptWidth = 50

// RenderReceipt prices a cart against the catalog and renders the
// fixed-width receipt text.
//
// Prices are looked up at render time: if a price changed since the cart
// was built, the receipt reflects the current price. The function is
// pure, it neither mutates the catalog nor touches disk. A cart line
// referencing an unknown product fails with ErrNotFound.
func RenderReceipt(c *Catalog, cart *Cart, discountPercent decimal.Decimal, at time.Time) (Receipt, error) {
	var b strings.Builder
	line := func(format string, args ...any) { fmt.Fprintf(&b, format+"\n", args...) }

	line("RECEIPT")
	line(strings.Repeat("=", receiptWidth))
	line("Date: %s", at.Format("2006-01-02 15:04:05"))
	line("")
	line("%-20s %4s %9s %10s", "Item", "Qty", "Price", "Total")
	line(strings.Repeat("-", receiptWidth))

	subtotal := M(0, "")
	for id, qty := range cart.Lines() {
		p := c.Get(id)
		if p == nil {
			return Receipt{}, fmt.Errorf("cannot bill %q: %w", id, ErrNotFound)
		}
		lineTotal := p.Price.MulInt(qty)
		subtotal = subtotal.Add(lineTotal)

		name := p.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		line("%-20s %4d %9s %10s", name, qty, p.Price.Fixed(), lineTotal.Fixed())
	}

	line(strings.Repeat("-", receiptWidth))
	line("%43s %10s", "Subtotal:", subtotal.Fixed())

	discount := M(0, subtotal.Currency())
	total := subtotal
	if discountPercent.IsPositive() {
		discount = subtotal.Percent(discountPercent)
		total = subtotal.Sub(discount)
		line("%43s -%10s", fmt.Sprintf("Discount (%s%%):", discountPercent), discount.Fixed())
	}
	line("%43s %10s", "Total:", total.Fixed())
	line(strings.Repeat("=", receiptWidth))
	line("Thank you for your business!")

	return Receipt{Text: b.String(), Subtotal: subtotal, Discount: discount, Total: total}, nil
}
