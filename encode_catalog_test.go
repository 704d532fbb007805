package shop

import (
	"os"
	"strings"
	"testing"
)

func TestDecodeCatalogSkipsRowsWithoutIDOrName(t *testing.T) {
	in := `Product ID,Name,Price,Stock Quantity
P001,Beans,18.50,24
,Nameless,2.00,3
P003,,2.00,3
P004,Filters,4.00,100
`
	c, err := DecodeCatalog(strings.NewReader(in), "USD")
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("want 2 products, got %d", c.Len())
	}
	if c.Get("P001") == nil || c.Get("P004") == nil {
		t.Error("well-formed rows missing")
	}
}

func TestDecodeCatalogMalformedNumbersFailTheLoad(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{
			name: "bad price",
			in:   "Product ID,Name,Price,Stock Quantity\nP001,Beans,cheap,24\n",
		},
		{
			name: "bad stock",
			in:   "Product ID,Name,Price,Stock Quantity\nP001,Beans,18.50,many\n",
		},
		{
			name: "negative stock",
			in:   "Product ID,Name,Price,Stock Quantity\nP001,Beans,18.50,-1\n",
		},
		{
			name: "row too short",
			in:   "Product ID,Name,Price,Stock Quantity\nP001,Beans,18.50\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeCatalog(strings.NewReader(tc.in), "USD"); err == nil {
				t.Error("want decode error, got none")
			}
		})
	}
}

func TestLoadDegradesToEmptyOnDamagedSnapshot(t *testing.T) {
	s := newTestStore(t)
	damaged := "Product ID,Name,Price,Stock Quantity\nP001,Beans,NaN,24\n"
	if err := os.WriteFile(s.CatalogFile, []byte(damaged), 0644); err != nil {
		t.Fatal(err)
	}

	c := s.Load()
	if c.Len() != 0 {
		t.Errorf("want empty catalog from damaged snapshot, got %d products", c.Len())
	}
}

func TestLoadFirstRun(t *testing.T) {
	s := newTestStore(t)
	c := s.Load() // no snapshot file exists yet
	if c.Len() != 0 {
		t.Errorf("want empty catalog on first run, got %d products", c.Len())
	}
}

func TestEncodeCatalogOrder(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c,
		Product{ID: "Z", Name: "Last In First Listed? No", Price: usd(t, "1.00"), Stock: 1},
		Product{ID: "A", Name: "Second", Price: usd(t, "2.00"), Stock: 2},
	)

	data, err := os.ReadFile(s.CatalogFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Product ID,Name,Price,Stock Quantity" {
		t.Errorf("header = %q", lines[0])
	}
	// Insertion order is preserved, not alphabetical.
	if !strings.HasPrefix(lines[1], "Z,") || !strings.HasPrefix(lines[2], "A,") {
		t.Errorf("rows out of insertion order: %v", lines[1:])
	}
}
