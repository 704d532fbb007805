package shop

import "fmt"

// ProductUpdate carries the optional fields of an Update. A nil field
// keeps the current value.
type ProductUpdate struct {
	Name  *string
	Price *Money
	Stock *int
}

// Catalog operations. Each one validates against the in-memory catalog,
// mutates it, and immediately persists the snapshot. Validation failures
// come back as typed errors wrapping ErrNotFound, ErrDuplicateID or
// ErrInsufficientStock; on success the returned string is a message ready
// to show the user.

// Add inserts a new product and persists the catalog.
func (s *Store) Add(c *Catalog, id, name string, price Money, stock int) (string, error) {
	if id == "" || name == "" {
		return "", fmt.Errorf("a product needs both an id and a name")
	}
	if price.IsNegative() {
		return "", fmt.Errorf("price of %q must not be negative", id)
	}
	if stock < 0 {
		return "", fmt.Errorf("stock of %q must not be negative", id)
	}
	if err := c.Put(Product{ID: id, Name: name, Price: price, Stock: stock}); err != nil {
		return "", fmt.Errorf("cannot add %q: %w", id, err)
	}
	s.persist(c)
	return fmt.Sprintf("added %q to the catalog", name), nil
}

// Update overwrites the provided fields of an existing product and
// persists the catalog. An update with no fields is a valid no-op that
// still rewrites the snapshot.
func (s *Store) Update(c *Catalog, id string, u ProductUpdate) (string, error) {
	p := c.Get(id)
	if p == nil {
		return "", fmt.Errorf("cannot update %q: %w", id, ErrNotFound)
	}
	if u.Name != nil && *u.Name != "" {
		s.log.Infow("renaming product", "id", id, "from", p.Name, "to", *u.Name)
		p.Name = *u.Name
	}
	if u.Price != nil {
		if u.Price.IsNegative() {
			return "", fmt.Errorf("price of %q must not be negative", id)
		}
		p.Price = *u.Price
	}
	if u.Stock != nil {
		if *u.Stock < 0 {
			return "", fmt.Errorf("stock of %q must not be negative", id)
		}
		p.Stock = *u.Stock
	}
	s.persist(c)
	return fmt.Sprintf("updated %q", id), nil
}

// Remove deletes a product and persists the catalog.
func (s *Store) Remove(c *Catalog, id string) (string, error) {
	p := c.Get(id)
	if p == nil {
		return "", fmt.Errorf("cannot remove %q: %w", id, ErrNotFound)
	}
	name := p.Name
	c.delete(id)
	s.persist(c)
	return fmt.Sprintf("removed %q from the catalog", name), nil
}

// ReduceStock decrements a product's stock by qty, typically during
// checkout, and persists the catalog. The stock never goes negative: a
// qty larger than the available stock fails with ErrInsufficientStock and
// leaves the product untouched.
func (s *Store) ReduceStock(c *Catalog, id string, qty int) (string, error) {
	p := c.Get(id)
	if p == nil {
		return "", fmt.Errorf("cannot reduce stock of %q: %w", id, ErrNotFound)
	}
	if qty < 0 {
		return "", fmt.Errorf("cannot reduce stock of %q by negative %d", id, qty)
	}
	if qty > p.Stock {
		return "", fmt.Errorf("only %d of %q in stock, want %d: %w", p.Stock, p.Name, qty, ErrInsufficientStock)
	}
	p.Stock -= qty
	s.persist(c)
	return fmt.Sprintf("stock updated for %q", p.Name), nil
}
