package shop

import (
	"path/filepath"
	"testing"
)

// newTestStore returns a store rooted in a fresh temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(
		filepath.Join(dir, "products.csv"),
		filepath.Join(dir, "sales.csv"),
		filepath.Join(dir, "receipts"),
		"USD",
		nil,
	)
}

// seedCatalog adds products through the regular operation so the snapshot
// on disk matches the in-memory catalog.
func seedCatalog(t *testing.T, s *Store, c *Catalog, products ...Product) {
	t.Helper()
	for _, p := range products {
		if _, err := s.Add(c, p.ID, p.Name, p.Price, p.Stock); err != nil {
			t.Fatalf("seed %q: %v", p.ID, err)
		}
	}
}

func usd(t *testing.T, v string) Money {
	t.Helper()
	m, err := ParsePrice(v, "USD")
	if err != nil {
		t.Fatalf("ParsePrice(%q): %v", v, err)
	}
	return m
}
