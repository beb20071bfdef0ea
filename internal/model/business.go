package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is a tenant: one store with its own catalog, staff and sales.
type Business struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Admin is a business owner account ("CEO" in the admin screens).
type Admin struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BusinessID int64  `json:"business,omitempty"`
}

// Employee is a staff member of a business.
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	BusinessID int64  `json:"business,omitempty"`
}

// Supplier provides products to a business.
type Supplier struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	BusinessID int64  `json:"business,omitempty"`
}

// Expense is a purchase or operating cost recorded against a business.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DateExpense time.Time       `json:"dateExpense"`
	SupplierID  *int64          `json:"supplier,omitempty"`
	BusinessID  int64           `json:"business,omitempty"`
}
