// Package cart implements the service-selection cart behind the quote form.
//
// The cart is an explicit state object: every mutation goes through one of
// the four named operations (Add, Remove, SetQuantity, Clear) rather than
// through ambient shared state. Carts live in the in-memory Store, keyed by
// an opaque cart id the browser holds — nothing is persisted.
package cart

import (
	"github.com/tylerdean1/devons-handyman-backend/internal/catalog"
)

// LineItem is one selected service and how many of it the customer wants.
type LineItem struct {
	Service  catalog.Service `json:"service"`
	Quantity int             `json:"quantity"`
}

// Cart is the full selection state for one visitor.
type Cart struct {
	items []LineItem
}

// Add appends the service with the given quantity, or bumps the quantity if
// the service is already in the cart. Quantities below 1 are treated as 1.
func (c *Cart) Add(svc catalog.Service, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Service.ID == svc.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, LineItem{Service: svc, Quantity: qty})
}

// Remove drops the service from the cart. Removing a service that is not in
// the cart is a no-op.
func (c *Cart) Remove(serviceID string) {
	for i := range c.items {
		if c.items[i].Service.ID == serviceID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity for a service already in the cart. A quantity
// of zero or less removes the line. Returns false when the service is not in
// the cart.
func (c *Cart) SetQuantity(serviceID string, qty int) bool {
	if qty < 1 {
		c.Remove(serviceID)
		return true
	}
	for i := range c.items {
		if c.items[i].Service.ID == serviceID {
			c.items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total quantity across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}
