package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptItem is one printed line of a receipt ticket.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Receipt carries everything needed to render a ticket for a completed sale.
// Built by the checkout flow at submission time so the async worker does not
// have to re-query the upstream API.
type Receipt struct {
	SaleID   int64           `json:"sale_id"`
	DateSale time.Time       `json:"date_sale"`
	Client   string          `json:"client"`
	Method   string          `json:"method"`
	Items    []ReceiptItem   `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
