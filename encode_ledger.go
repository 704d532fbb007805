package shop

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ocastel/shop/date"
)

// The sales ledger is headerless CSV, one row per sold cart line:
//
//	2026-08-28,P001,2,22.50
//
// Rows are only ever appended, never rewritten.

// EncodeSales appends the given records to w in ledger form.
func EncodeSales(w io.Writer, records []SaleRecord) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		row := []string{rec.Day.String(), rec.ProductID, strconv.Itoa(rec.Qty), rec.Amount.Fixed()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSales streams ledger rows from r, calling fn for each decoded
// record. It stops early if fn returns false. Any malformed row stops the
// scan with an error; records already delivered to fn stand, which is how
// ledger scans produce partial results.
func DecodeSales(r io.Reader, currency string, fn func(SaleRecord) bool) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read sales row: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if len(row) < 4 {
			return fmt.Errorf("sales row %v: want 4 fields, got %d", row, len(row))
		}

		day, err := date.Parse(row[0])
		if err != nil {
			return fmt.Errorf("sales row for %q: %w", row[1], err)
		}
		qty, err := strconv.Atoi(row[2])
		if err != nil {
			return fmt.Errorf("sales row for %q: invalid quantity %q: %w", row[1], row[2], err)
		}
		amount, err := ParsePrice(row[3], currency)
		if err != nil {
			return fmt.Errorf("sales row for %q: invalid amount: %w", row[1], err)
		}

		rec := SaleRecord{Day: day, ProductID: row[1], Qty: qty, Amount: amount}
		if !fn(rec) {
			return nil
		}
	}
}
