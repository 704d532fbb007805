package shop

import "iter"

// Cart maps product ids to requested quantities during a single checkout.
// It is transient: only its derived effects (stock reductions, ledger
// rows, the receipt) outlive the checkout. Lines keep insertion order so
// the receipt lists items the way they were rung up.
type Cart struct {
	ids []string
	qty map[string]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{qty: make(map[string]int)}
}

// Add puts qty units of a product in the cart, accumulating with any
// quantity already there. Zero or negative quantities are ignored.
func (c *Cart) Add(id string, qty int) {
	if qty <= 0 {
		return
	}
	if _, ok := c.qty[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.qty[id] += qty
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int { return len(c.ids) }

// Quantity returns the quantity carted for a product, 0 if absent.
func (c *Cart) Quantity(id string) int { return c.qty[id] }

// Lines returns an iterator over (product id, quantity) in insertion order.
func (c *Cart) Lines() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, id := range c.ids {
			if !yield(id, c.qty[id]) {
				return
			}
		}
	}
}
