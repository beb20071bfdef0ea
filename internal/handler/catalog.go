package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gallegosdmz/pos-front-sub000/internal/apierror"
	"github.com/gallegosdmz/pos-front-sub000/internal/cache"
	"github.com/gallegosdmz/pos-front-sub000/internal/cart"
	"github.com/gallegosdmz/pos-front-sub000/internal/dto"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
)

// CatalogHandler serves read access to the business catalog, backed by the
// Redis cache-aside source.
type CatalogHandler struct {
	catalog *cache.CatalogSource
}

func NewCatalogHandler(catalog *cache.CatalogSource) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts returns the sellable products of a business.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	products, err := h.catalog.Products(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.FromProduct(p))
	}
	c.JSON(http.StatusOK, out)
}

// LookupProduct resolves a code (barcode first, then id) against the catalog.
// Used by the price-check flow; the checkout scan endpoint has its own path.
func (h *CatalogHandler) LookupProduct(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Missing code parameter"))
		return
	}
	products, err := h.catalog.Products(c.Request.Context(), middleware.GetToken(c), businessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	p, err := cart.Lookup(code, products)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(p))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return 0, false
	}
	return id, true
}
