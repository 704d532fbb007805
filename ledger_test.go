package shop

import (
	"os"
	"testing"

	"github.com/ocastel/shop/date"
)

func TestDailyTotalSingleSale(t *testing.T) {
	s := newTestStore(t)
	day := date.MustParse("2026-08-28")

	cart := NewCart()
	cart.Add("A", 2)
	if err := s.LogSaleOn(day, cart, usd(t, "20.00")); err != nil {
		t.Fatalf("LogSaleOn: %v", err)
	}

	if got := s.DailyTotal(day); !got.Equal(usd(t, "20.00")) {
		t.Errorf("DailyTotal = %s, want 20.00", got.Fixed())
	}
	if got := s.DailyTotal(day.Add(1)); !got.IsZero() {
		t.Errorf("DailyTotal next day = %s, want 0", got.Fixed())
	}
}

func TestDailyTotalRepeatsBillPerLine(t *testing.T) {
	// A multi-item cart writes the full bill total on every row, so the
	// daily total deliberately over-counts: 15.00 x 2 rows = 30.00.
	s := newTestStore(t)
	day := date.MustParse("2026-08-28")

	cart := NewCart()
	cart.Add("A", 1)
	cart.Add("B", 1)
	if err := s.LogSaleOn(day, cart, usd(t, "15.00")); err != nil {
		t.Fatalf("LogSaleOn: %v", err)
	}

	if got := s.DailyTotal(day); !got.Equal(usd(t, "30.00")) {
		t.Errorf("DailyTotal = %s, want 30.00 (bill total once per row)", got.Fixed())
	}
}

func TestDailyTotalNoLedgerFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.DailyTotal(date.MustParse("2026-08-28")); !got.IsZero() {
		t.Errorf("DailyTotal without ledger = %s, want 0", got.Fixed())
	}
}

func TestDailyTotalMalformedRowIsPartial(t *testing.T) {
	s := newTestStore(t)
	ledger := "2026-08-28,A,2,20.00\n2026-08-28,B,1,not-a-number\n2026-08-28,C,1,5.00\n"
	if err := os.WriteFile(s.SalesFile, []byte(ledger), 0644); err != nil {
		t.Fatal(err)
	}

	// The scan aborts on the malformed row; the total covers only the
	// rows before it.
	got := s.DailyTotal(date.MustParse("2026-08-28"))
	if !got.Equal(usd(t, "20.00")) {
		t.Errorf("DailyTotal = %s, want partial 20.00", got.Fixed())
	}
}

func TestTopSellers(t *testing.T) {
	s := newTestStore(t)
	day := date.MustParse("2026-08-28")

	for _, sale := range []struct {
		id  string
		qty int
	}{
		{"A", 2}, {"B", 9}, {"A", 3}, {"C", 3},
	} {
		cart := NewCart()
		cart.Add(sale.id, sale.qty)
		if err := s.LogSaleOn(day, cart, usd(t, "1.00")); err != nil {
			t.Fatalf("LogSaleOn: %v", err)
		}
	}

	// Quantities: A=5, B=9, C=3.
	got := s.TopSellers(2)
	if len(got) != 2 || got[0].ProductID != "B" || got[1].ProductID != "A" {
		t.Fatalf("TopSellers(2) = %v, want [B A]", got)
	}
	if got[0].Qty != 9 || got[1].Qty != 5 {
		t.Errorf("TopSellers quantities = %v", got)
	}
}

func TestTopSellersTiesKeepFirstSoldOrder(t *testing.T) {
	s := newTestStore(t)
	day := date.MustParse("2026-08-28")

	for _, id := range []string{"X", "Y", "Z"} {
		cart := NewCart()
		cart.Add(id, 4)
		if err := s.LogSaleOn(day, cart, usd(t, "1.00")); err != nil {
			t.Fatalf("LogSaleOn: %v", err)
		}
	}

	got := s.TopSellers(3)
	if len(got) != 3 || got[0].ProductID != "X" || got[1].ProductID != "Y" || got[2].ProductID != "Z" {
		t.Errorf("TopSellers ties = %v, want first-sold order [X Y Z]", got)
	}
}

func TestTopSellersEmptyOnMissingOrDamagedLedger(t *testing.T) {
	s := newTestStore(t)
	if got := s.TopSellers(5); len(got) != 0 {
		t.Errorf("TopSellers without ledger = %v, want empty", got)
	}

	if err := os.WriteFile(s.SalesFile, []byte("2026-08-28,A,lots,1.00\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := s.TopSellers(5); len(got) != 0 {
		t.Errorf("TopSellers on damaged ledger = %v, want empty", got)
	}
}

func TestLogSaleAppends(t *testing.T) {
	s := newTestStore(t)
	day := date.MustParse("2026-08-28")

	first := NewCart()
	first.Add("A", 2)
	if err := s.LogSaleOn(day, first, usd(t, "20.00")); err != nil {
		t.Fatal(err)
	}
	second := NewCart()
	second.Add("A", 1)
	second.Add("B", 1)
	if err := s.LogSaleOn(day, second, usd(t, "15.00")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.SalesFile)
	if err != nil {
		t.Fatal(err)
	}
	want := "2026-08-28,A,2,20.00\n2026-08-28,A,1,15.00\n2026-08-28,B,1,15.00\n"
	if string(data) != want {
		t.Errorf("ledger file:\n%s\nwant:\n%s", data, want)
	}
}
