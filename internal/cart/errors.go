package cart

import "errors"

var (
	// ErrNotFound is returned when a scanned or typed code matches neither a
	// barcode nor a product id in the loaded catalog.
	ErrNotFound = errors.New("product not found")

	// ErrNoStock is returned when a product with zero stock is added.
	ErrNoStock = errors.New("product is out of stock")

	// ErrInsufficientStock is returned when a quantity mutation would exceed
	// the product's current stock. The cart is left unchanged.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
)
