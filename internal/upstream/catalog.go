package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// Products returns the sellable catalog for one business.
func (c *Client) Products(ctx context.Context, token string, businessID int64) ([]model.Product, error) {
	var products []model.Product
	path := fmt.Sprintf("/products/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, p model.Product) (*model.Product, error) {
	var created model.Product
	if err := c.do(ctx, token, http.MethodPost, "/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, p model.Product) (*model.Product, error) {
	var updated model.Product
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/products/%d", id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Categories returns the product categories for one business.
func (c *Client) Categories(ctx context.Context, token string, businessID int64) ([]model.Category, error) {
	var categories []model.Category
	path := fmt.Sprintf("/categories/by-business/%d", businessID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, cat model.Category) (*model.Category, error) {
	var created model.Category
	if err := c.do(ctx, token, http.MethodPost, "/categories", cat, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, cat model.Category) (*model.Category, error) {
	var updated model.Category
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/categories/%d", id), cat, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
