package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/apierror"
	"github.com/gallegosdmz/pos-front-sub000/internal/cart"
	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeUpstreamError maps upstream client errors onto responses:
// 401 unauthorized, 400 validation (messages surfaced), anything else a 502
// with a generic message — upstream bodies are never relayed raw.
func writeUpstreamError(c *gin.Context, err error) {
	var ve *upstream.ValidationError
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierror.New("Session expired or invalid"))
	case errors.As(err, &ve):
		msg := "Validation failed"
		if len(ve.Messages) > 0 {
			msg = strings.Join(ve.Messages, "; ")
		}
		c.JSON(http.StatusBadRequest, apierror.New(msg))
	default:
		c.JSON(http.StatusBadGateway, apierror.New("POS service unavailable"))
	}
}

// writeCheckoutError maps the cart/checkout error taxonomy onto responses.
// Errors outside the taxonomy fall through to the upstream mapping.
func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Checkout session not found"))
	case errors.Is(err, cart.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
	case errors.Is(err, cart.ErrNoStock):
		c.JSON(http.StatusConflict, apierror.New("Product is out of stock"))
	case errors.Is(err, cart.ErrInsufficientStock):
		c.JSON(http.StatusConflict, apierror.New("Not enough stock for the requested quantity"))
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Cart is empty"))
	case errors.Is(err, checkout.ErrInsufficientPayment):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Cash received does not cover the total"))
	case errors.Is(err, checkout.ErrPaymentNotOpen):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Payment dialog is not open"))
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, apierror.New("A submission is already in progress"))
	default:
		writeUpstreamError(c, err)
	}
}
