package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// ─── Requests ────────────────────────────────────────────────────────────────

type StartSessionRequest struct {
	BusinessID int64 `json:"business_id" validate:"required,min=1"`
}

// ScanRequest carries a decoded barcode/QR string or manually typed code —
// both go through the same lookup.
type ScanRequest struct {
	Code string `json:"code" validate:"required"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

// UpdateQuantityRequest sets an absolute quantity; 0 removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ConfirmPaymentRequest confirms the payment dialog. Customer name and
// method are truncated (not rejected) past 150 characters.
type ConfirmPaymentRequest struct {
	Method        string          `json:"method" validate:"required,oneof=cash card transfer"`
	CashReceived  decimal.Decimal `json:"cash_received" validate:"min=0"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email" validate:"omitempty,email"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type CartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SessionResponse struct {
	SessionID  string             `json:"session_id"`
	BusinessID int64              `json:"business_id"`
	Items      []CartLineResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Total      decimal.Decimal    `json:"total"`
	Dialog     string             `json:"dialog"`
}

type SaleResultResponse struct {
	SaleID   int64           `json:"sale_id"`
	DateSale string          `json:"date_sale"`
	Client   string          `json:"client"`
	Method   string          `json:"method"`
	Total    decimal.Decimal `json:"total"`
	Change   decimal.Decimal `json:"change"`
}

// FromView converts a checkout snapshot into its response shape.
// Amounts are rounded to 2 decimals here — and only here.
func FromView(v checkout.View) SessionResponse {
	items := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Round(2),
			Subtotal:  l.Subtotal().Round(2),
		})
	}
	return SessionResponse{
		SessionID:  v.ID.String(),
		BusinessID: v.BusinessID,
		Items:      items,
		Subtotal:   v.Totals.Subtotal.Round(2),
		Tax:        v.Totals.Tax.Round(2),
		Total:      v.Totals.Total.Round(2),
		Dialog:     v.Dialog.String(),
	}
}

// FromSubmitResult converts a successful submission for display.
func FromSubmitResult(r *checkout.SubmitResult) SaleResultResponse {
	return SaleResultResponse{
		SaleID:   r.Sale.ID,
		DateSale: r.Sale.DateSale.Format(time.RFC3339),
		Client:   r.Sale.Client,
		Method:   r.Sale.Method,
		Total:    r.Sale.Total.Round(2),
		Change:   r.Change.Round(2),
	}
}

// ProductResponse is a catalog entry as rendered to clients.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Barcode     string          `json:"barcode"`
	Stock       int             `json:"stock"`
}

func FromProduct(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Round(2),
		Barcode:     p.Barcode,
		Stock:       p.Stock,
	}
}
