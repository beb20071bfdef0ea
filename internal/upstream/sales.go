package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// CreateSale submits a completed sale. On success the upstream echoes the
// sale back with its server-assigned id.
func (c *Client) CreateSale(ctx context.Context, token string, req model.SaleRequest) (*model.SaleRecord, error) {
	var created model.SaleRecord
	if err := c.do(ctx, token, http.MethodPost, "/sales", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Sales lists the recorded sales for one business (admin screen + dashboard).
func (c *Client) Sales(ctx context.Context, token string, businessID int64) ([]model.SaleRecord, error) {
	var sales []model.SaleRecord
	path := fmt.Sprintf("/sales/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}
