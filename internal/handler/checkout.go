package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gallegosdmz/pos-front-sub000/internal/apierror"
	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/dto"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
)

// CheckoutHandler exposes the new-sale flow: one session per in-progress
// sale, cart mutations, scan input, totals and the payment dialog.
type CheckoutHandler struct{ svc *checkout.Service }

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// StartSession godoc
// @Summary      Start a checkout session
// @Description  Loads the business catalog and opens an empty cart.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.StartSessionRequest true "Business to sell for"
// @Success      201  {object} dto.SessionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/checkout/sessions [post]
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var req dto.StartSessionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	view, err := h.svc.StartSession(c.Request.Context(), middleware.GetToken(c), req.BusinessID)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromView(view))
}

// GetSession returns the current cart, totals and dialog state.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.svc.Snapshot(id)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// EndSession drops the session and its cart (navigation away).
func (h *CheckoutHandler) EndSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.svc.EndSession(id)
	c.Status(http.StatusNoContent)
}

// Scan godoc
// @Summary      Add a product by scanned or typed code
// @Description  Resolves the code against the session catalog (barcode first, then id) and adds one unit.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string          true "Session id"
// @Param        body body dto.ScanRequest true "Decoded or typed code"
// @Success      200  {object} dto.SessionResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/checkout/sessions/{id}/scan [post]
func (h *CheckoutHandler) Scan(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.ScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	_, view, err := h.svc.AddByCode(id, req.Code)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// AddItem adds one unit of a catalog product to the cart.
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	view, err := h.svc.AddProduct(id, req.ProductID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// UpdateItem sets the absolute quantity for a cart line; 0 removes it.
func (h *CheckoutHandler) UpdateItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid product id"))
		return
	}
	var req dto.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	view, err := h.svc.UpdateQuantity(id, productID, req.Quantity)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// RemoveItem drops a cart line; removing an absent line is a no-op.
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid product id"))
		return
	}
	view, err := h.svc.Remove(id, productID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// OpenPayment opens the payment dialog for a non-empty cart.
func (h *CheckoutHandler) OpenPayment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.svc.OpenPayment(id)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// ClosePayment cancels the dialog, keeping the cart.
func (h *CheckoutHandler) ClosePayment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.svc.ClosePayment(id)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// ConfirmPayment godoc
// @Summary      Confirm the payment and record the sale
// @Description  Validates payment, submits the sale upstream, clears the cart on success and enqueues the receipt ticket.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Session id"
// @Param        body body dto.ConfirmPaymentRequest true "Payment details"
// @Success      201  {object} dto.SaleResultResponse
// @Failure      422  {object} apierror.APIError
// @Router       /v1/checkout/sessions/{id}/payment/confirm [post]
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.ConfirmPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.Submit(c.Request.Context(), middleware.GetToken(c), id, checkout.SubmitInput{
		Method:        req.Method,
		CashReceived:  req.CashReceived,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromSubmitResult(result))
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid session id"))
		return uuid.Nil, false
	}
	return id, true
}
