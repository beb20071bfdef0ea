package cart

import "github.com/shopspring/decimal"

// TaxRate is the fixed 16% sales tax applied to every cart.
// Hard-coded on purpose: treated as a legal constant, not deployment config.
var TaxRate = decimal.New(16, -2)

// Totals are the derived amounts for a cart. Values are exact decimals;
// rounding happens only at the presentation boundary.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute derives subtotal, tax and total from the current cart content.
func Compute(c *Cart) Totals {
	subtotal := decimal.Zero
	for _, l := range c.Lines() {
		subtotal = subtotal.Add(l.Subtotal())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Change returns cashReceived − total. Only meaningful for cash payments;
// a negative result means the payment does not cover the sale.
func Change(t Totals, cashReceived decimal.Decimal) decimal.Decimal {
	return cashReceived.Sub(t.Total)
}
