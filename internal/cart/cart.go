// Package cart implements the client-side shopping cart.
//
// A Cart is a list of line items keyed by product ID. Line totals are
// recomputed whenever a quantity changes and the cart total is recomputed on
// every read, so neither can drift from the line state. A Cart is not safe for
// concurrent use; the session serializes access.
package cart

import (
	"github.com/enset/dashboard/internal/domain"
)

type Cart struct {
	items []domain.CartLineItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add adds one unit of product to the cart. A product already in the cart
// has its quantity incremented; otherwise a new line with quantity 1 is
// appended.
func (c *Cart) Add(product domain.Product) domain.CartLineItem {
	if i := c.indexOf(product.ID); i >= 0 {
		item := &c.items[i]
		item.Quantity++
		item.TotalPrice = lineTotal(item.Quantity, item.UnitPrice)
		return *item
	}

	item := domain.CartLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    1,
		TotalPrice:  lineTotal(1, product.Price),
	}
	c.items = append(c.items, item)
	return item
}

// SetQuantity sets the quantity of a line. A quantity <= 0 removes the line.
// It reports whether the product was in the cart.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return true
	}
	item := &c.items[i]
	item.Quantity = quantity
	item.TotalPrice = lineTotal(quantity, item.UnitPrice)
	return true
}

// Remove drops the line for productID
func (c *Cart) Remove(productID int64) bool {
	return c.SetQuantity(productID, 0)
}

// Get returns the line for productID
func (c *Cart) Get(productID int64) (domain.CartLineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i], true
	}
	return domain.CartLineItem{}, false
}

// Items returns a copy of the lines in insertion order
func (c *Cart) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clone returns an independent copy of the cart
func (c *Cart) Clone() *Cart {
	return &Cart{items: c.Items()}
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total is the sum of all line totals
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.TotalPrice
	}
	return total
}

// Subtract removes the quantities held by submitted from the cart. Lines
// added after submitted was taken are kept.
func (c *Cart) Subtract(submitted *Cart) {
	for _, line := range submitted.items {
		i := c.indexOf(line.ProductID)
		if i < 0 {
			continue
		}
		c.SetQuantity(line.ProductID, c.items[i].Quantity-line.Quantity)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func lineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
