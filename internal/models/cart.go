package models

import (
	"bytes"
	"encoding/json"
)

// ProductRef is a product foreign key as the backend serializes it. The
// backend does not guarantee population: the field arrives as a full product
// object, a bare id string, or null. The three cases are modeled explicitly
// so callers handle each one instead of chaining nil checks.
type ProductRef struct {
	product *Product
	id      string
}

// PopulatedRef builds a reference carrying the full product.
func PopulatedRef(p Product) ProductRef {
	return ProductRef{product: &p, id: p.ID}
}

// IDRef builds a reference carrying only the product id.
func IDRef(id string) ProductRef {
	return ProductRef{id: id}
}

// Populated returns the referenced product when the backend populated it.
func (r ProductRef) Populated() (Product, bool) {
	if r.product == nil {
		return Product{}, false
	}
	return *r.product, true
}

// ProductID returns the referenced product id, or empty string when the
// reference is missing entirely.
func (r ProductRef) ProductID() string {
	return r.id
}

// IsMissing returns true when the backend sent no reference at all.
func (r ProductRef) IsMissing() bool {
	return r.product == nil && r.id == ""
}

// UnmarshalJSON accepts the three shapes the backend emits: a product
// object, a bare id string, or null. Anything else is treated as a missing
// reference rather than a decode failure, since unpopulated foreign keys
// must never abort a snapshot load.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*r = ProductRef{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			*r = ProductRef{}
			return nil
		}
		*r = ProductRef{id: id}
	case '{':
		var p Product
		if err := json.Unmarshal(trimmed, &p); err != nil {
			*r = ProductRef{}
			return nil
		}
		*r = ProductRef{product: &p, id: p.ID}
	default:
		*r = ProductRef{}
	}

	return nil
}

// MarshalJSON round-trips the shape the reference was decoded from.
func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.product != nil {
		return json.Marshal(r.product)
	}
	if r.id != "" {
		return json.Marshal(r.id)
	}
	return []byte("null"), nil
}

// CartItem represents an item in a customer's shopping cart.
type CartItem struct {
	ID       string     `json:"id"`
	Product  ProductRef `json:"product_id"`
	Quantity int        `json:"quantity"`
}

// Subtotal returns the line total for the item given its resolved product.
func (c *CartItem) Subtotal(p Product) float64 {
	qty := c.Quantity
	if qty < 1 {
		qty = 1
	}
	return p.Price * float64(qty)
}

// WishlistItem represents an item on a customer's wishlist.
type WishlistItem struct {
	ID      string     `json:"id"`
	Product ProductRef `json:"product_id"`
}
