package handler

// admin.go — the administrative CRUD screens, proxied to the upstream API.
// Handlers validate input, forward with the caller's token and map errors;
// the upstream owns every business rule.

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gallegosdmz/pos-front-sub000/internal/cache"
	"github.com/gallegosdmz/pos-front-sub000/internal/dto"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"
)

type AdminHandler struct {
	api   *upstream.Client
	cache *cache.CatalogCache
}

func NewAdminHandler(api *upstream.Client, cache *cache.CatalogCache) *AdminHandler {
	return &AdminHandler{api: api, cache: cache}
}

// ── Businesses ───────────────────────────────────────────────────────────────

func (h *AdminHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.api.Businesses(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

func (h *AdminHandler) CreateBusiness(c *gin.Context) {
	var req dto.BusinessRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateBusiness(c.Request.Context(), middleware.GetToken(c), model.Business{
		Name: req.Name, Address: req.Address, Phone: req.Phone, Email: req.Email,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BusinessRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateBusiness(c.Request.Context(), middleware.GetToken(c), id, model.Business{
		Name: req.Name, Address: req.Address, Phone: req.Phone, Email: req.Email,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteBusiness(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Admins (business owners) ─────────────────────────────────────────────────

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.api.Admins(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.AdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateAdmin(c.Request.Context(), middleware.GetToken(c), model.Admin{
		Name: req.Name, Surname: req.Surname, Email: req.Email, Phone: req.Phone, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateAdmin(c.Request.Context(), middleware.GetToken(c), id, model.Admin{
		Name: req.Name, Surname: req.Surname, Email: req.Email, Phone: req.Phone, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteAdmin(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Employees ────────────────────────────────────────────────────────────────

func (h *AdminHandler) ListEmployees(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employees, err := h.api.Employees(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *AdminHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateEmployee(c.Request.Context(), middleware.GetToken(c), model.Employee{
		Name: req.Name, Surname: req.Surname, Email: req.Email, Phone: req.Phone,
		Position: req.Position, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateEmployee(c.Request.Context(), middleware.GetToken(c), id, model.Employee{
		Name: req.Name, Surname: req.Surname, Email: req.Email, Phone: req.Phone,
		Position: req.Position, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteEmployee(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Categories ───────────────────────────────────────────────────────────────

func (h *AdminHandler) ListCategories(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	categories, err := h.api.Categories(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateCategory(c.Request.Context(), middleware.GetToken(c), model.Category{
		Name: req.Name, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateCategory(c.Request.Context(), middleware.GetToken(c), id, model.Category{
		Name: req.Name, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteCategory(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Products ─────────────────────────────────────────────────────────────────
// Product writes invalidate the cached catalog so in-flight checkout screens
// pick up fresh stock and prices on their next session.

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateProduct(c.Request.Context(), middleware.GetToken(c), model.Product{
		Name: req.Name, Description: req.Description, Price: req.Price,
		Barcode: req.Barcode, Stock: req.Stock, CategoryID: req.CategoryID, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	h.cache.Invalidate(c.Request.Context(), req.BusinessID)
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateProduct(c.Request.Context(), middleware.GetToken(c), id, model.Product{
		Name: req.Name, Description: req.Description, Price: req.Price,
		Barcode: req.Barcode, Stock: req.Stock, CategoryID: req.CategoryID, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	h.cache.Invalidate(c.Request.Context(), req.BusinessID)
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteProduct(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	// Deletes carry no body; the business id arrives as a query hint.
	if businessID, err := strconv.ParseInt(c.Query("business_id"), 10, 64); err == nil && businessID > 0 {
		h.cache.Invalidate(c.Request.Context(), businessID)
	}
	c.Status(http.StatusNoContent)
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (h *AdminHandler) ListSuppliers(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	suppliers, err := h.api.Suppliers(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *AdminHandler) CreateSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateSupplier(c.Request.Context(), middleware.GetToken(c), model.Supplier{
		Name: req.Name, Phone: req.Phone, Email: req.Email, Address: req.Address, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateSupplier(c.Request.Context(), middleware.GetToken(c), id, model.Supplier{
		Name: req.Name, Phone: req.Phone, Email: req.Email, Address: req.Address, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteSupplier(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (h *AdminHandler) ListExpenses(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	expenses, err := h.api.Expenses(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *AdminHandler) CreateExpense(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.api.CreateExpense(c.Request.Context(), middleware.GetToken(c), model.Expense{
		Description: req.Description, Amount: req.Amount, DateExpense: req.DateExpense,
		SupplierID: req.SupplierID, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.api.UpdateExpense(c.Request.Context(), middleware.GetToken(c), id, model.Expense{
		Description: req.Description, Amount: req.Amount, DateExpense: req.DateExpense,
		SupplierID: req.SupplierID, BusinessID: req.BusinessID,
	})
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteExpense(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Sales (read) ─────────────────────────────────────────────────────────────

func (h *AdminHandler) ListSales(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sales, err := h.api.Sales(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
