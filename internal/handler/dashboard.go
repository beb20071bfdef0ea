package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/cache"
	"github.com/gallegosdmz/pos-front-sub000/internal/dto"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"
)

// DashboardHandler aggregates the per-business counters shown on the landing
// screen. Products come through the catalog cache; the rest are fetched live.
type DashboardHandler struct {
	api     *upstream.Client
	catalog *cache.CatalogSource
}

func NewDashboardHandler(api *upstream.Client, catalog *cache.CatalogSource) *DashboardHandler {
	return &DashboardHandler{api: api, catalog: catalog}
}

// Get godoc
// @Summary      Dashboard counters for a business
// @Tags         dashboard
// @Produce      json
// @Param        id  path  int  true  "Business ID"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      502  {object}  apierror.APIError
// @Security     BearerAuth
// @Router       /v1/businesses/{id}/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	token := middleware.GetToken(c)

	products, err := h.catalog.Products(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	employees, err := h.api.Employees(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	categories, err := h.api.Categories(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	suppliers, err := h.api.Suppliers(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	expenses, err := h.api.Expenses(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	sales, err := h.api.Sales(ctx, token, businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	resp := dto.DashboardResponse{
		Products:        len(products),
		Employees:       len(employees),
		Categories:      len(categories),
		Suppliers:       len(suppliers),
		Expenses:        len(expenses),
		SalesTodayTotal: decimal.Zero,
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, s := range sales {
		if s.DateSale.Before(startOfDay) {
			continue
		}
		resp.SalesToday++
		resp.SalesTodayTotal = resp.SalesTodayTotal.Add(s.Total)
	}

	c.JSON(http.StatusOK, resp)
}
