package cart

import (
	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// Line is one cart entry. UnitPrice is a snapshot of the catalog price at
// add time — a later catalog price change never affects an in-progress cart.
type Line struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns UnitPrice × Quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered set of lines for one in-progress sale. At most one line
// exists per product id, and after every mutation no line's quantity exceeds
// the stock it was checked against.
//
// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []Line
}

// AddProduct adds one unit of p to the cart. A product with no stock is
// rejected with ErrNoStock. If the product already has a line, its quantity
// is incremented unless that would exceed p.Stock, in which case the cart is
// left unchanged and ErrInsufficientStock is returned.
func (c *Cart) AddProduct(p model.Product) error {
	if p.Stock < 1 {
		return ErrNoStock
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			if c.lines[i].Quantity+1 > p.Stock {
				return ErrInsufficientStock
			}
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
		UnitPrice: p.Price,
	})
	return nil
}

// UpdateQuantity sets the quantity for p's line. A quantity above p.Stock is
// rejected with ErrInsufficientStock; a quantity below 1 removes the line.
// Updating an absent product is a no-op.
func (c *Cart) UpdateQuantity(p model.Product, quantity int) error {
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	if quantity < 1 {
		c.Remove(p.ID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Remove deletes the line for productID if present. Idempotent.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the current quantity for productID, 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Len returns the number of distinct product lines.
func (c *Cart) Len() int { return len(c.lines) }

// Clear drops all lines. Called after a successful sale submission.
func (c *Cart) Clear() { c.lines = nil }

// Details converts the cart into upstream sale detail lines.
func (c *Cart) Details() []model.SaleDetail {
	details := make([]model.SaleDetail, 0, len(c.lines))
	for _, l := range c.lines {
		details = append(details, model.SaleDetail{
			Product:   l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return details
}
