package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/dto"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubCatalog struct {
	products []model.Product
	err      error
}

func (s *stubCatalog) Products(_ context.Context, _ string, _ int64) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

type stubSales struct {
	err    error
	nextID int64
}

func (s *stubSales) CreateSale(_ context.Context, _ string, req model.SaleRequest) (*model.SaleRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	return &model.SaleRecord{ID: s.nextID, DateSale: req.DateSale, Total: req.Total, Client: req.Client, Method: req.Method}, nil
}

// ── Harness ───────────────────────────────────────────────────────────────────

func checkoutRouter(catalog *stubCatalog, sales *stubSales) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := checkout.NewService(catalog, sales, nil)
	h := NewCheckoutHandler(svc)

	r := gin.New()
	sessions := r.Group("/v1/checkout/sessions", middleware.BearerAuth())
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:sessionId", h.GetSession)
		sessions.DELETE("/:sessionId", h.EndSession)
		sessions.POST("/:sessionId/scan", h.Scan)
		sessions.POST("/:sessionId/items", h.AddItem)
		sessions.PATCH("/:sessionId/items/:productId", h.UpdateItem)
		sessions.DELETE("/:sessionId/items/:productId", h.RemoveItem)
		sessions.POST("/:sessionId/payment", h.OpenPayment)
		sessions.DELETE("/:sessionId/payment", h.ClosePayment)
		sessions.POST("/:sessionId/payment/confirm", h.ConfirmPayment)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, r *gin.Engine) dto.SessionResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions", dto.StartSessionRequest{BusinessID: 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func defaultCatalog() *stubCatalog {
	return &stubCatalog{products: []model.Product{
		{ID: 1, Name: "Coca Cola 600ml", Price: decimal.NewFromInt(100), Barcode: "7501055300006", Stock: 10},
		{ID: 2, Name: "Hielo 5kg", Price: decimal.NewFromInt(50), Barcode: "7501031311309", Stock: 10},
		{ID: 3, Name: "Agotado", Price: decimal.NewFromInt(30), Barcode: "7509998800001", Stock: 0},
	}}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestStartSession_RequiresBearerToken(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions", bytes.NewBufferString(`{"business_id":1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStartSession_ValidationError(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions", gin.H{"business_id": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestStartSession_UpstreamDown(t *testing.T) {
	r := checkoutRouter(&stubCatalog{err: errors.New("dial tcp: refused")}, &stubSales{})

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions", dto.StartSessionRequest{BusinessID: 1})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "POS service unavailable")
}

func TestStartSession_ExpiredToken(t *testing.T) {
	r := checkoutRouter(&stubCatalog{err: upstream.ErrUnauthorized}, &stubSales{})

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions", dto.StartSessionRequest{BusinessID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired or invalid")
}

func TestScan_AddsItem(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/scan", dto.ScanRequest{Code: "7501055300006"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Coca Cola 600ml", resp.Items[0].Name)
	assert.Equal(t, "100", resp.Subtotal.String())
	assert.Equal(t, "16", resp.Tax.String())
	assert.Equal(t, "116", resp.Total.String())
}

func TestScan_UnknownCode(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/scan", dto.ScanRequest{Code: "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestAddItem_OutOfStock(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/items", dto.AddItemRequest{ProductID: 3})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "out of stock")
}

func TestUpdateItem_QuantityAboveStock(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)
	doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/items", dto.AddItemRequest{ProductID: 1})

	w := doJSON(t, r, http.MethodPatch, "/v1/checkout/sessions/"+sess.SessionID+"/items/1", dto.UpdateQuantityRequest{Quantity: 99})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOpenPayment_EmptyCart(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/payment", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestConfirmPayment_FullCashFlow(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)
	base := "/v1/checkout/sessions/" + sess.SessionID

	// 2 × 100 + 1 × 50 → total 290 with tax
	doJSON(t, r, http.MethodPost, base+"/items", dto.AddItemRequest{ProductID: 1})
	doJSON(t, r, http.MethodPost, base+"/items", dto.AddItemRequest{ProductID: 1})
	doJSON(t, r, http.MethodPost, base+"/items", dto.AddItemRequest{ProductID: 2})

	w := doJSON(t, r, http.MethodPost, base+"/payment", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/payment/confirm", dto.ConfirmPaymentRequest{
		Method:       "cash",
		CashReceived: decimal.NewFromInt(300),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result dto.SaleResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.SaleID)
	assert.Equal(t, "General customer", result.Client)
	assert.Equal(t, "290", result.Total.String())
	assert.Equal(t, "10", result.Change.String())

	// session survives with an empty cart
	w = doJSON(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Empty(t, snap.Items)
}

func TestConfirmPayment_InsufficientCash(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)
	base := "/v1/checkout/sessions/" + sess.SessionID

	doJSON(t, r, http.MethodPost, base+"/items", dto.AddItemRequest{ProductID: 1})
	doJSON(t, r, http.MethodPost, base+"/payment", nil)

	w := doJSON(t, r, http.MethodPost, base+"/payment/confirm", dto.ConfirmPaymentRequest{
		Method:       "cash",
		CashReceived: decimal.NewFromInt(50),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "does not cover")
}

func TestConfirmPayment_InvalidMethod(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/checkout/sessions/"+sess.SessionID+"/payment/confirm", gin.H{"method": "bitcoin"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConfirmPayment_UpstreamFailureKeepsCart(t *testing.T) {
	sales := &stubSales{err: &upstream.RequestError{Status: 503, Message: "maintenance"}}
	r := checkoutRouter(defaultCatalog(), sales)
	sess := startSession(t, r)
	base := "/v1/checkout/sessions/" + sess.SessionID

	doJSON(t, r, http.MethodPost, base+"/items", dto.AddItemRequest{ProductID: 1})
	doJSON(t, r, http.MethodPost, base+"/payment", nil)

	w := doJSON(t, r, http.MethodPost, base+"/payment/confirm", dto.ConfirmPaymentRequest{Method: "card"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// cart and open dialog survive for a retry
	w = doJSON(t, r, http.MethodGet, base, nil)
	var snap dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "open", snap.Dialog)
}

func TestEndSession_ThenGone(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})
	sess := startSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/v1/checkout/sessions/"+sess.SessionID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/checkout/sessions/"+sess.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionID_Invalid(t *testing.T) {
	r := checkoutRouter(defaultCatalog(), &stubSales{})

	w := doJSON(t, r, http.MethodGet, "/v1/checkout/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
