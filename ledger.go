package shop

import (
	"fmt"
	"os"
	"sort"

	"github.com/ocastel/shop/date"
)

// SaleRecord is one row of the sales ledger.
//
// Amount is the total bill of the checkout that produced the row, not a
// per-line share: when a cart holds several distinct products, every row
// of that checkout repeats the same bill total. This matches the historic
// sales.csv format, and DailyTotal deliberately sums it as-is, so a day
// with multi-item carts reads higher than the money actually taken.
type SaleRecord struct {
	Day       date.Date
	ProductID string
	Qty       int
	Amount    Money
}

// ProductSales is an aggregated quantity sold for one product.
type ProductSales struct {
	ProductID string
	Qty       int
}

// LogSale appends one ledger row per cart line, dated today, each
// carrying the full bill total. The ledger file is append-only and is
// created on first use.
func (s *Store) LogSale(cart *Cart, total Money) error {
	return s.LogSaleOn(date.Today(), cart, total)
}

// LogSaleOn is LogSale with an explicit calendar day.
func (s *Store) LogSaleOn(day date.Date, cart *Cart, total Money) error {
	f, err := os.OpenFile(s.SalesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open sales ledger %q: %w", s.SalesFile, err)
	}
	defer f.Close()

	var records []SaleRecord
	for id, qty := range cart.Lines() {
		records = append(records, SaleRecord{Day: day, ProductID: id, Qty: qty, Amount: total})
	}
	if err := EncodeSales(f, records); err != nil {
		return fmt.Errorf("could not append to sales ledger %q: %w", s.SalesFile, err)
	}
	return nil
}

// DailyTotal scans the whole ledger and sums the amount of every row
// dated day. No ledger file yet means no sales: zero.
//
// The sum keeps the ledger's literal semantics: a multi-item checkout
// contributes its bill total once per row (see SaleRecord). A malformed
// row aborts the scan with a diagnostic and the total accumulated so far
// is returned.
func (s *Store) DailyTotal(day date.Date) Money {
	total := M(0, s.Currency)

	f, err := os.Open(s.SalesFile)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Errorw("could not open sales ledger", "file", s.SalesFile, "error", err)
		}
		return total
	}
	defer f.Close()

	err = DecodeSales(f, s.Currency, func(rec SaleRecord) bool {
		if rec.Day == day {
			total = total.Add(rec.Amount)
		}
		return true
	})
	if err != nil {
		s.log.Errorw("sales ledger scan aborted, daily total is partial", "file", s.SalesFile, "error", err)
	}
	return total
}

// TopSellers aggregates the quantity sold per product across the whole
// ledger and returns the top limit products by quantity. Ties keep the
// order products were first sold in. An absent or unreadable ledger
// yields an empty result.
func (s *Store) TopSellers(limit int) []ProductSales {
	f, err := os.Open(s.SalesFile)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Errorw("could not open sales ledger", "file", s.SalesFile, "error", err)
		}
		return nil
	}
	defer f.Close()

	qty := make(map[string]int)
	var order []string
	err = DecodeSales(f, s.Currency, func(rec SaleRecord) bool {
		if _, ok := qty[rec.ProductID]; !ok {
			order = append(order, rec.ProductID)
		}
		qty[rec.ProductID] += rec.Qty
		return true
	})
	if err != nil {
		s.log.Errorw("could not read sales ledger, no top sellers", "file", s.SalesFile, "error", err)
		return nil
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, ProductSales{ProductID: id, Qty: qty[id]})
	}
	// Stable, so equal quantities keep first-sold order.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Qty > ranked[j].Qty })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
