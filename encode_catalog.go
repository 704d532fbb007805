package shop

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// catalogHeader is the snapshot's header row. The column names are part of
// the file format: existing products.csv files use them.
var catalogHeader = []string{"Product ID", "Name", "Price", "Stock Quantity"}

// DecodeCatalog reads a catalog snapshot in CSV form.
//
// Rows missing the id or the name are skipped: they carry no usable
// product. A malformed price or stock field however fails the whole
// decode, so the caller can tell a damaged snapshot from a sparse one.
func DecodeCatalog(r io.Reader, currency string) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are validated field by field below

	c := NewCatalog()
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read catalog row: %w", err)
		}
		if first {
			// Header row. Its exact content is not enforced so hand-edited
			// files with renamed columns still load.
			first = false
			continue
		}

		var id, name string
		if len(rec) > 0 {
			id = rec[0]
		}
		if len(rec) > 1 {
			name = rec[1]
		}
		if id == "" || name == "" {
			continue
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("catalog row for %q: want 4 fields, got %d", id, len(rec))
		}

		price, err := ParsePrice(rec[2], currency)
		if err != nil {
			return nil, fmt.Errorf("catalog row for %q: %w", id, err)
		}
		stock, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("catalog row for %q: invalid stock %q: %w", id, rec[3], err)
		}
		if stock < 0 {
			return nil, fmt.Errorf("catalog row for %q: invalid stock %d: must not be negative", id, stock)
		}
		if err := c.Put(Product{ID: id, Name: name, Price: price, Stock: stock}); err != nil {
			return nil, fmt.Errorf("catalog row for %q: %w", id, err)
		}
	}
}

// EncodeCatalog writes the full catalog in CSV form, header row first,
// products in catalog order.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(catalogHeader); err != nil {
		return err
	}
	for p := range c.Products() {
		rec := []string{p.ID, p.Name, p.Price.Fixed(), strconv.Itoa(p.Stock)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
