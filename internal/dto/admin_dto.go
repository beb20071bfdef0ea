package dto

// admin_dto.go — request bodies for the administrative CRUD screens.
// Responses reuse the model types directly: the upstream API is the record
// of truth and its shapes are already client-facing.

import (
	"time"

	"github.com/shopspring/decimal"
)

type BusinessRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Address string `json:"address" validate:"max=150"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type AdminRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Surname    string `json:"surname" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"max=30"`
	BusinessID int64  `json:"business_id" validate:"required,min=1"`
}

type EmployeeRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Surname    string `json:"surname" validate:"required,max=150"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=30"`
	Position   string `json:"position" validate:"max=150"`
	BusinessID int64  `json:"business_id" validate:"required,min=1"`
}

type CategoryRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	BusinessID int64  `json:"business_id" validate:"required,min=1"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price" validate:"required,min=0"`
	Barcode     string          `json:"barcode" validate:"max=64"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoryID  *int64          `json:"category_id"`
	BusinessID  int64           `json:"business_id" validate:"required,min=1"`
}

type SupplierRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Phone      string `json:"phone" validate:"max=30"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"max=150"`
	BusinessID int64  `json:"business_id" validate:"required,min=1"`
}

type ExpenseRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"required,min=0"`
	DateExpense time.Time       `json:"date_expense" validate:"required"`
	SupplierID  *int64          `json:"supplier_id"`
	BusinessID  int64           `json:"business_id" validate:"required,min=1"`
}

// DashboardResponse aggregates the counts shown on the dashboard screen.
type DashboardResponse struct {
	Products        int             `json:"products"`
	Employees       int             `json:"employees"`
	Categories      int             `json:"categories"`
	Suppliers       int             `json:"suppliers"`
	Expenses        int             `json:"expenses"`
	SalesToday      int             `json:"sales_today"`
	SalesTodayTotal decimal.Decimal `json:"sales_today_total"`
}
