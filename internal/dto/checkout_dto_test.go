package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

func TestFromSubmitResult_DateKeepsUpstreamZone(t *testing.T) {
	// the upstream may echo the sale date in a local offset; the rendered
	// timestamp must carry that offset instead of a hard-coded Z
	loc := time.FixedZone("CST", -6*3600)
	result := &checkout.SubmitResult{
		Sale: &model.SaleRecord{
			ID:       41,
			DateSale: time.Date(2025, 3, 1, 18, 30, 0, 0, loc),
			Total:    decimal.NewFromInt(290),
			Client:   "General customer",
			Method:   "cash",
		},
		Change: decimal.NewFromInt(10),
	}

	resp := FromSubmitResult(result)
	assert.Equal(t, "2025-03-01T18:30:00-06:00", resp.DateSale)
}

func TestFromSubmitResult_UTC(t *testing.T) {
	result := &checkout.SubmitResult{
		Sale: &model.SaleRecord{
			ID:       42,
			DateSale: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(100),
		},
		Change: decimal.Zero,
	}

	assert.Equal(t, "2025-03-01T12:00:00Z", FromSubmitResult(result).DateSale)
}
