package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

func product(id int64, name string, price float64, stock int) model.Product {
	return model.Product{ID: id, Name: name, Price: decimal.NewFromFloat(price), Stock: stock}
}

// ── AddProduct ────────────────────────────────────────────────────────────────

func TestAddProduct_NewLine(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddProduct(product(1, "Coca Cola 600ml", 18.50, 10)))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "18.5", lines[0].UnitPrice.String())
}

func TestAddProduct_SinStock(t *testing.T) {
	var c Cart
	err := c.AddProduct(product(1, "Agotado", 10, 0))
	assert.ErrorIs(t, err, ErrNoStock)
	assert.True(t, c.IsEmpty())
}

func TestAddProduct_IncrementsExistingLine(t *testing.T) {
	var c Cart
	p := product(1, "Sabritas", 15, 5)
	require.NoError(t, c.AddProduct(p))
	require.NoError(t, c.AddProduct(p))
	require.NoError(t, c.AddProduct(p))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Quantity(1))
}

func TestAddProduct_IncrementBeyondStock(t *testing.T) {
	var c Cart
	p := product(1, "Leche 1L", 25, 2)
	require.NoError(t, c.AddProduct(p))
	require.NoError(t, c.AddProduct(p))

	err := c.AddProduct(p)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	// cart unchanged on rejection
	assert.Equal(t, 2, c.Quantity(1))
}

func TestAddProduct_PriceSnapshotIsStable(t *testing.T) {
	var c Cart
	p := product(1, "Pan", 30, 10)
	require.NoError(t, c.AddProduct(p))

	// A later catalog price change must not touch the line already in the cart.
	p.Price = decimal.NewFromFloat(45)
	require.NoError(t, c.AddProduct(p))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "30", lines[0].UnitPrice.String())
	assert.Equal(t, 2, lines[0].Quantity)
}

// ── UpdateQuantity ────────────────────────────────────────────────────────────

func TestUpdateQuantity_SetsExact(t *testing.T) {
	var c Cart
	p := product(1, "Arroz 1kg", 32, 8)
	require.NoError(t, c.AddProduct(p))

	require.NoError(t, c.UpdateQuantity(p, 5))
	assert.Equal(t, 5, c.Quantity(1))
}

func TestUpdateQuantity_AboveStock(t *testing.T) {
	var c Cart
	p := product(1, "Frijol 1kg", 38, 4)
	require.NoError(t, c.AddProduct(p))

	err := c.UpdateQuantity(p, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 1, c.Quantity(1))
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	var c Cart
	p := product(1, "Azúcar 1kg", 28, 6)
	require.NoError(t, c.AddProduct(p))

	require.NoError(t, c.UpdateQuantity(p, 0))
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	var c Cart
	p := product(1, "Sal", 12, 6)
	require.NoError(t, c.AddProduct(p))

	require.NoError(t, c.UpdateQuantity(p, -3))
	assert.Equal(t, 0, c.Quantity(1))
}

// ── Remove ────────────────────────────────────────────────────────────────────

func TestRemove_Idempotent(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddProduct(product(1, "Galletas", 22, 5)))
	require.NoError(t, c.AddProduct(product(2, "Jugo", 19, 5)))

	c.Remove(1)
	assert.Equal(t, 1, c.Len())

	// removing again, and removing something never added, are both no-ops
	c.Remove(1)
	c.Remove(99)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Quantity(2))
}

func TestRemove_PreservesInsertionOrder(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddProduct(product(1, "A", 1, 5)))
	require.NoError(t, c.AddProduct(product(2, "B", 1, 5)))
	require.NoError(t, c.AddProduct(product(3, "C", 1, 5)))

	c.Remove(2)
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID)
}

// ── Totals ────────────────────────────────────────────────────────────────────

func TestCompute_EmptyCart(t *testing.T) {
	var c Cart
	totals := Compute(&c)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestCompute_SubtotalTaxTotal(t *testing.T) {
	var c Cart
	p1 := product(1, "Cerveza six", 100, 10)
	p2 := product(2, "Hielo 5kg", 50, 10)
	require.NoError(t, c.AddProduct(p1))
	require.NoError(t, c.AddProduct(p1))
	require.NoError(t, c.AddProduct(p2))

	// subtotal 250, tax 16% = 40, total 290
	totals := Compute(&c)
	assert.Equal(t, "250", totals.Subtotal.String())
	assert.Equal(t, "40", totals.Tax.String())
	assert.Equal(t, "290", totals.Total.String())
}

func TestCompute_RandomizedCartsHoldTotalsInvariant(t *testing.T) {
	// For any cart with nonnegative quantities and decimal prices:
	// subtotal = Σ price×qty, tax = subtotal×rate, total = subtotal+tax.
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		var c Cart
		expected := decimal.Zero

		lines := 1 + rng.Intn(8)
		for j := 0; j < lines; j++ {
			// prices with up to 2 decimal places, quantities 0..50
			price := decimal.New(int64(rng.Intn(1_000_000)), -2)
			qty := rng.Intn(51)
			p := product(int64(j+1), "p", 0, 1000)
			p.Price = price

			require.NoError(t, c.AddProduct(p))
			require.NoError(t, c.UpdateQuantity(p, qty)) // qty 0 removes the line

			expected = expected.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		}

		totals := Compute(&c)
		assert.True(t, totals.Subtotal.Equal(expected),
			"subtotal %s != expected %s", totals.Subtotal, expected)
		assert.True(t, totals.Tax.Equal(totals.Subtotal.Mul(TaxRate)))
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
	}
}

func TestChange(t *testing.T) {
	totals := Totals{Total: decimal.NewFromInt(290)}

	assert.Equal(t, "10", Change(totals, decimal.NewFromInt(300)).String())
	assert.Equal(t, "0", Change(totals, decimal.NewFromInt(290)).String())
	assert.True(t, Change(totals, decimal.NewFromInt(200)).IsNegative())
}

// ── Details ───────────────────────────────────────────────────────────────────

func TestDetails(t *testing.T) {
	var c Cart
	p := product(7, "Café 250g", 89.90, 3)
	require.NoError(t, c.AddProduct(p))
	require.NoError(t, c.UpdateQuantity(p, 2))

	details := c.Details()
	require.Len(t, details, 1)
	assert.Equal(t, int64(7), details[0].Product)
	assert.Equal(t, 2, details[0].Quantity)
	assert.Equal(t, "89.9", details[0].UnitPrice.String())
}
