package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetail is one line of a submitted sale, matching the upstream wire format.
type SaleDetail struct {
	Product   int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// SaleRequest is the payload POSTed to the upstream sales endpoint.
// Client and Method are capped at 150 characters before submission.
type SaleRequest struct {
	DateSale time.Time       `json:"dateSale"`
	Total    decimal.Decimal `json:"total"`
	Details  []SaleDetail    `json:"details"`
	Client   string          `json:"client"`
	Method   string          `json:"method"`
}

// SaleRecord is a sale as echoed back by the upstream API, including the
// server-assigned id.
type SaleRecord struct {
	ID       int64           `json:"id"`
	DateSale time.Time       `json:"dateSale"`
	Total    decimal.Decimal `json:"total"`
	Details  []SaleDetail    `json:"details"`
	Client   string          `json:"client"`
	Method   string          `json:"method"`
}
