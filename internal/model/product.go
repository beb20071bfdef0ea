package model

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item as served by the upstream catalog endpoint.
// The checkout flow treats it as read-only reference data: price and stock
// are authoritative upstream, this service only holds session-scoped copies.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Barcode     string          `json:"barcode"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category,omitempty"`
	BusinessID  int64           `json:"business,omitempty"`
}

// Category classifies products within a business.
type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BusinessID int64  `json:"business,omitempty"`
}
