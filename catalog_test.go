package shop

import (
	"errors"
	"testing"
)

func TestAddRoundTrip(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()

	if _, err := s.Add(c, "P001", "Espresso Beans 1kg", usd(t, "18.50"), 24); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh load of the persisted snapshot yields exactly that product.
	loaded := s.Load()
	if loaded.Len() != 1 {
		t.Fatalf("Load: want 1 product, got %d", loaded.Len())
	}
	p := loaded.Get("P001")
	if p == nil {
		t.Fatal("Load: P001 missing")
	}
	if p.Name != "Espresso Beans 1kg" || !p.Price.Equal(usd(t, "18.50")) || p.Stock != 24 {
		t.Errorf("Load: got %+v", p)
	}
}

func TestAddDuplicate(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c, Product{ID: "P001", Name: "Beans", Price: usd(t, "18.50"), Stock: 24})

	_, err := s.Add(c, "P001", "Other", usd(t, "1.00"), 1)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Add duplicate: want ErrDuplicateID, got %v", err)
	}

	// Catalog and snapshot are unchanged.
	if p := c.Get("P001"); p.Name != "Beans" || p.Stock != 24 {
		t.Errorf("catalog changed by failed add: %+v", p)
	}
	if p := s.Load().Get("P001"); p == nil || p.Name != "Beans" {
		t.Errorf("snapshot changed by failed add: %+v", p)
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c, Product{ID: "P001", Name: "Beans", Price: usd(t, "18.50"), Stock: 24})

	name := "Dark Beans"
	price := usd(t, "19.90")
	stock := 48

	testCases := []struct {
		name   string
		update ProductUpdate
		want   Product
	}{
		{
			name:   "all fields",
			update: ProductUpdate{Name: &name, Price: &price, Stock: &stock},
			want:   Product{ID: "P001", Name: "Dark Beans", Price: price, Stock: 48},
		},
		{
			name:   "no fields is a persisted no-op",
			update: ProductUpdate{},
			want:   Product{ID: "P001", Name: "Dark Beans", Price: price, Stock: 48},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Update(c, "P001", tc.update); err != nil {
				t.Fatalf("Update: %v", err)
			}
			got := s.Load().Get("P001")
			if got == nil {
				t.Fatal("P001 missing after update")
			}
			if got.Name != tc.want.Name || !got.Price.Equal(tc.want.Price) || got.Stock != tc.want.Stock {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}

	if _, err := s.Update(c, "nope", ProductUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update unknown id: want ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c,
		Product{ID: "P001", Name: "Beans", Price: usd(t, "18.50"), Stock: 24},
		Product{ID: "P002", Name: "Filters", Price: usd(t, "4.00"), Stock: 100},
	)

	if _, err := s.Remove(c, "P001"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if c.Get("P001") != nil {
		t.Error("P001 still in catalog")
	}
	loaded := s.Load()
	if loaded.Get("P001") != nil || loaded.Get("P002") == nil {
		t.Error("snapshot does not reflect the removal")
	}

	if _, err := s.Remove(c, "P001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove twice: want ErrNotFound, got %v", err)
	}
}

func TestReduceStock(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c, Product{ID: "P001", Name: "Beans", Price: usd(t, "18.50"), Stock: 5})

	// Reducing by more than available leaves stock unchanged.
	if _, err := s.ReduceStock(c, "P001", 6); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	if got := c.Get("P001").Stock; got != 5 {
		t.Errorf("stock after failed reduction = %d, want 5", got)
	}

	// Reducing by exactly the current quantity leaves stock at 0.
	if _, err := s.ReduceStock(c, "P001", 5); err != nil {
		t.Fatalf("ReduceStock: %v", err)
	}
	if got := c.Get("P001").Stock; got != 0 {
		t.Errorf("stock = %d, want 0", got)
	}
	if got := s.Load().Get("P001").Stock; got != 0 {
		t.Errorf("persisted stock = %d, want 0", got)
	}

	if _, err := s.ReduceStock(c, "nope", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c,
		Product{ID: "P001", Name: "Espresso Beans", Price: usd(t, "18.50"), Stock: 24},
		Product{ID: "P002", Name: "Paper Filters", Price: usd(t, "4.00"), Stock: 100},
		Product{ID: "BEAN-9", Name: "Mug", Price: usd(t, "9.00"), Stock: 10},
	)

	testCases := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"P001", "P002", "BEAN-9"}}, // empty matches everything, catalog order
		{term: "bean", want: []string{"P001", "BEAN-9"}},     // matches name and id, case-insensitive
		{term: "FILTER", want: []string{"P002"}},
		{term: "zzz", want: nil},
	}

	for _, tc := range testCases {
		var got []string
		for _, p := range c.Search(tc.term) {
			got = append(got, p.ID)
		}
		if len(got) != len(tc.want) {
			t.Errorf("Search(%q) = %v, want %v", tc.term, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Search(%q) = %v, want %v", tc.term, got, tc.want)
				break
			}
		}
	}
}

func TestLowStock(t *testing.T) {
	s := newTestStore(t)
	c := NewCatalog()
	seedCatalog(t, s, c,
		Product{ID: "A", Name: "A", Price: usd(t, "1.00"), Stock: 5},
		Product{ID: "B", Name: "B", Price: usd(t, "1.00"), Stock: 12},
		Product{ID: "C", Name: "C", Price: usd(t, "1.00"), Stock: 0},
		Product{ID: "D", Name: "D", Price: usd(t, "1.00"), Stock: 6},
	)

	var got []string
	for _, p := range c.LowStock(5) {
		got = append(got, p.ID)
	}
	want := []string{"A", "C"} // stock <= 5, catalog order
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("LowStock(5) = %v, want %v", got, want)
	}
}
