package shop

import "testing"

func TestCartAccumulatesAndKeepsOrder(t *testing.T) {
	cart := NewCart()
	cart.Add("B", 1)
	cart.Add("A", 2)
	cart.Add("B", 3)
	cart.Add("Z", 0)  // ignored
	cart.Add("Z", -4) // ignored

	if cart.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cart.Len())
	}
	if got := cart.Quantity("B"); got != 4 {
		t.Errorf("Quantity(B) = %d, want 4", got)
	}

	var ids []string
	for id := range cart.Lines() {
		ids = append(ids, id)
	}
	if len(ids) != 2 || ids[0] != "B" || ids[1] != "A" {
		t.Errorf("Lines order = %v, want [B A]", ids)
	}
}
