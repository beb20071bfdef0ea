package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *infra.CircuitBreaker) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})
	return NewClient(srv.URL, 5*time.Second, cb), cb
}

func TestDo_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := client.Products(context.Background(), "my-token", 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestDo_DecodesResponse(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/by-business/7", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Coca Cola","price":"18.5","barcode":"750105","stock":3}]`))
	})

	products, err := client.Products(context.Background(), "tok", 7)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Coca Cola", products[0].Name)
	assert.Equal(t, "18.5", products[0].Price.String())
	assert.Equal(t, 3, products[0].Stock)
}

func TestDo_Unauthorized(t *testing.T) {
	client, cb := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	})

	_, err := client.Products(context.Background(), "expired", 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
	// an auth rejection is not an upstream outage
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestDo_ValidationError_StringMessage(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"name must be longer than 3 characters"}`))
	})

	_, err := client.CreateProduct(context.Background(), "tok", model.Product{Name: "x"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"name must be longer than 3 characters"}, vErr.Messages)
}

func TestDo_ValidationError_ArrayMessage(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":["name is required","price must be positive"]}`))
	})

	_, err := client.CreateProduct(context.Background(), "tok", model.Product{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Messages, 2)
}

func TestDo_NotFound(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product with id 99 not found"}`))
	})

	err := client.DeleteProduct(context.Background(), "tok", 99)
	var rErr *RequestError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, http.StatusNotFound, rErr.Status)
	assert.Contains(t, rErr.Message, "not found")
}

func TestDo_ServerErrorsTripBreaker(t *testing.T) {
	client, cb := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Internal server error"}`))
	})

	for i := 0; i < 3; i++ {
		_, err := client.Products(context.Background(), "tok", 1)
		var rErr *RequestError
		require.ErrorAs(t, err, &rErr)
	}
	assert.Equal(t, infra.CBOpen, cb.State())

	// while open, calls fast-fail without reaching the upstream
	_, err := client.Products(context.Background(), "tok", 1)
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
}

func TestDo_ClientErrorsDoNotTripBreaker(t *testing.T) {
	client, cb := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad"}`))
	})

	for i := 0; i < 10; i++ {
		_, err := client.CreateCategory(context.Background(), "tok", model.Category{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	}
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCreateSale_PostsWireFormat(t *testing.T) {
	var gotBody []byte
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sales", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":41,"total":"290","client":"General customer","method":"cash"}`))
	})

	record, err := client.CreateSale(context.Background(), "tok", model.SaleRequest{
		DateSale: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Total:    decimal.NewFromInt(290),
		Details: []model.SaleDetail{
			{Product: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
			{Product: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
		Client: "General customer",
		Method: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), record.ID)

	body := string(gotBody)
	assert.Contains(t, body, `"dateSale":"2025-03-01T12:00:00Z"`)
	assert.Contains(t, body, `"unitPrice":"100"`)
	assert.Contains(t, body, `"client":"General customer"`)
}

func TestParseMessage_UnknownShape(t *testing.T) {
	assert.Nil(t, parseMessage([]byte(`not json`)))
	assert.Empty(t, parseMessage([]byte(`{"message":{"nested":true}}`)))
}
