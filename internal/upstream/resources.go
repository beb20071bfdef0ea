package upstream

// resources.go — CRUD calls backing the remaining admin screens:
// businesses, owner accounts, employees, suppliers and expenses.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// ── Businesses ───────────────────────────────────────────────────────────────

func (c *Client) Businesses(ctx context.Context, token string) ([]model.Business, error) {
	var businesses []model.Business
	if err := c.do(ctx, token, http.MethodGet, "/businesses", nil, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (c *Client) CreateBusiness(ctx context.Context, token string, b model.Business) (*model.Business, error) {
	var created model.Business
	if err := c.do(ctx, token, http.MethodPost, "/businesses", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBusiness(ctx context.Context, token string, id int64, b model.Business) (*model.Business, error) {
	var updated model.Business
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/businesses/%d", id), b, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBusiness(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/businesses/%d", id), nil, nil)
}

// ── Admins (business owners) ─────────────────────────────────────────────────

func (c *Client) Admins(ctx context.Context, token string) ([]model.Admin, error) {
	var admins []model.Admin
	if err := c.do(ctx, token, http.MethodGet, "/ceos", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) CreateAdmin(ctx context.Context, token string, a model.Admin) (*model.Admin, error) {
	var created model.Admin
	if err := c.do(ctx, token, http.MethodPost, "/ceos", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, token string, id int64, a model.Admin) (*model.Admin, error) {
	var updated model.Admin
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/ceos/%d", id), a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/ceos/%d", id), nil, nil)
}

// ── Employees ────────────────────────────────────────────────────────────────

func (c *Client) Employees(ctx context.Context, token string, businessID int64) ([]model.Employee, error) {
	var employees []model.Employee
	path := fmt.Sprintf("/employees/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, token string, e model.Employee) (*model.Employee, error) {
	var created model.Employee
	if err := c.do(ctx, token, http.MethodPost, "/employees", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, token string, id int64, e model.Employee) (*model.Employee, error) {
	var updated model.Employee
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/employees/%d", id), e, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil)
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (c *Client) Suppliers(ctx context.Context, token string, businessID int64) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	path := fmt.Sprintf("/suppliers/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *Client) CreateSupplier(ctx context.Context, token string, s model.Supplier) (*model.Supplier, error) {
	var created model.Supplier
	if err := c.do(ctx, token, http.MethodPost, "/suppliers", s, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, token string, id int64, s model.Supplier) (*model.Supplier, error) {
	var updated model.Supplier
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/suppliers/%d", id), s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil)
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (c *Client) Expenses(ctx context.Context, token string, businessID int64) ([]model.Expense, error) {
	var expenses []model.Expense
	path := fmt.Sprintf("/expenses/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *Client) CreateExpense(ctx context.Context, token string, e model.Expense) (*model.Expense, error) {
	var created model.Expense
	if err := c.do(ctx, token, http.MethodPost, "/expenses", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateExpense(ctx context.Context, token string, id int64, e model.Expense) (*model.Expense, error) {
	var updated model.Expense
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/expenses/%d", id), e, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteExpense(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}
