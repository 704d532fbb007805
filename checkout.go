package shop

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ocastel/shop/date"
)

// CheckoutOptions tunes a single checkout.
type CheckoutOptions struct {
	// DiscountPercent, when positive, is applied to the subtotal.
	DiscountPercent decimal.Decimal
	// SaveReceipt persists the receipt text under the receipts directory,
	// in a file named by the checkout timestamp.
	SaveReceipt bool
	// ReceiptCSV saves the receipt as row-per-line CSV instead of plain
	// text. Only meaningful with SaveReceipt.
	ReceiptCSV bool
	// At is the checkout time. Zero means now.
	At time.Time
}

// CheckoutResult reports what a checkout did.
type CheckoutResult struct {
	SaleID      string
	Receipt     Receipt
	ReceiptPath string
	// StockIssues lists cart lines whose stock reduction failed. The sale
	// is still logged for the full cart, so a non-empty list means the
	// ledger and the catalog have drifted apart for this checkout.
	StockIssues []string
}

// Checkout completes a sale for a populated cart: it renders the receipt,
// reduces stock line by line, appends the sale to the ledger, and
// optionally writes the receipt file.
//
// Stock reductions and the ledger append are best-effort sequential
// operations, not a transaction. A failing line (stock edited out from
// under us on disk, say) does not stop the remaining lines, and the sale
// is logged for the full original cart either way. Single-user scope
// makes this drift unlikely; it is accepted, not defended against.
func (s *Store) Checkout(c *Catalog, cart *Cart, opts CheckoutOptions) (CheckoutResult, error) {
	if cart.Len() == 0 {
		return CheckoutResult{}, fmt.Errorf("cart is empty, nothing to check out")
	}
	at := opts.At
	if at.IsZero() {
		at = time.Now()
	}

	receipt, err := RenderReceipt(c, cart, opts.DiscountPercent, at)
	if err != nil {
		return CheckoutResult{}, err
	}
	result := CheckoutResult{SaleID: uuid.NewString(), Receipt: receipt}

	for id, qty := range cart.Lines() {
		if _, err := s.ReduceStock(c, id, qty); err != nil {
			s.log.Warnw("stock reduction failed during checkout, ledger will drift",
				"sale", result.SaleID, "product", id, "qty", qty, "error", err)
			result.StockIssues = append(result.StockIssues, err.Error())
		}
	}

	day := date.New(at.Date())
	if err := s.LogSaleOn(day, cart, receipt.Total); err != nil {
		s.log.Errorw("could not log sale", "sale", result.SaleID, "error", err)
	}

	if opts.SaveReceipt {
		path, err := s.saveReceipt(receipt.Text, at, opts.ReceiptCSV)
		if err != nil {
			s.log.Errorw("could not save receipt", "sale", result.SaleID, "error", err)
		} else {
			result.ReceiptPath = path
		}
	}
	return result, nil
}

// saveReceipt writes the receipt text to a timestamp-named file in the
// receipts directory and returns its path.
func (s *Store) saveReceipt(text string, at time.Time, asCSV bool) (string, error) {
	if err := os.MkdirAll(s.ReceiptsDir, 0755); err != nil {
		return "", fmt.Errorf("could not create receipts directory %q: %w", s.ReceiptsDir, err)
	}

	stamp := at.Format("20060102_150405")
	if asCSV {
		// Degenerate one-column CSV, each receipt line its own row. Kept
		// for compatibility with the historic export.
		path := filepath.Join(s.ReceiptsDir, "receipt_"+stamp+".csv")
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("could not create receipt %q: %w", path, err)
		}
		defer f.Close()
		cw := csv.NewWriter(f)
		for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			if err := cw.Write([]string{line}); err != nil {
				return "", fmt.Errorf("could not write receipt %q: %w", path, err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return "", fmt.Errorf("could not write receipt %q: %w", path, err)
		}
		return path, nil
	}

	path := filepath.Join(s.ReceiptsDir, "receipt_"+stamp+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("could not write receipt %q: %w", path, err)
	}
	return path, nil
}
