package shop

import (
	"iter"
	"strings"
)

// Product is a single entry of the catalog.
type Product struct {
	ID    string
	Name  string
	Price Money
	Stock int
}

// Catalog holds every product of the shop, keyed by product id.
//
// Iteration order is the insertion order, so listings and reports are
// stable across runs. The catalog is fully materialized in memory and is
// the source of truth while the process runs; the snapshot file trails it.
type Catalog struct {
	ids  []string
	byID map[string]*Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*Product)}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.ids) }

// Get returns the product with the given id, or nil if unknown.
func (c *Catalog) Get(id string) *Product { return c.byID[id] }

// Put inserts a product, appending it to the iteration order. It fails
// with ErrDuplicateID if the id is already present.
func (c *Catalog) Put(p Product) error {
	if _, ok := c.byID[p.ID]; ok {
		return ErrDuplicateID
	}
	c.ids = append(c.ids, p.ID)
	c.byID[p.ID] = &p
	return nil
}

// delete removes a product and its slot in the iteration order.
func (c *Catalog) delete(id string) {
	delete(c.byID, id)
	for i, v := range c.ids {
		if v == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			return
		}
	}
}

// Products returns an iterator over all products in catalog order.
func (c *Catalog) Products() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, id := range c.ids {
			if !yield(c.byID[id]) {
				return
			}
		}
	}
}

// Search returns all products whose id or name contains term,
// case-insensitively, in catalog order. An empty term matches everything.
func (c *Catalog) Search(term string) []*Product {
	term = strings.ToLower(term)
	var results []*Product
	for p := range c.Products() {
		if strings.Contains(strings.ToLower(p.ID), term) ||
			strings.Contains(strings.ToLower(p.Name), term) {
			results = append(results, p)
		}
	}
	return results
}

// LowStock returns all products whose stock is at or below threshold, in
// catalog order.
func (c *Catalog) LowStock(threshold int) []*Product {
	var results []*Product
	for p := range c.Products() {
		if p.Stock <= threshold {
			results = append(results, p)
		}
	}
	return results
}
