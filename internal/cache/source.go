package cache

import (
	"context"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// ProductFetcher is the upstream call the catalog source falls back to.
type ProductFetcher interface {
	Products(ctx context.Context, token string, businessID int64) ([]model.Product, error)
}

// CatalogSource is the cache-aside view of the business catalog: Redis hit
// first, upstream on miss, best-effort cache fill.
type CatalogSource struct {
	cache *CatalogCache
	api   ProductFetcher
}

func NewCatalogSource(cache *CatalogCache, api ProductFetcher) *CatalogSource {
	return &CatalogSource{cache: cache, api: api}
}

func (s *CatalogSource) Products(ctx context.Context, token string, businessID int64) ([]model.Product, error) {
	if products, ok := s.cache.Get(ctx, token, businessID); ok {
		return products, nil
	}
	products, err := s.api.Products(ctx, token, businessID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, token, businessID, products)
	return products, nil
}
