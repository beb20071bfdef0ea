// Package cache holds the Redis-backed catalog cache. The upstream API owns
// the catalog; this cache only shortens the hot path for checkout sessions
// and scan lookups. Writes are best-effort: a Redis failure never fails a
// request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

const catalogTTL = 5 * time.Minute

type CatalogCache struct {
	rdb *redis.Client
}

func NewCatalogCache(rdb *redis.Client) *CatalogCache {
	return &CatalogCache{rdb: rdb}
}

// catalogKey scopes entries by business AND by a digest of the bearer token.
// The upstream API is the only authority on tokens, so a cached catalog must
// never be served to a token the upstream has not already accepted — each
// token earns its own entry by first passing one real upstream fetch.
func catalogKey(token string, businessID int64) string {
	digest := sha256.Sum256([]byte(token))
	return fmt.Sprintf("catalog:%d:%x", businessID, digest[:8])
}

// Get returns the cached product list for a business, or ok=false on a miss
// (including any Redis or decode failure).
func (c *CatalogCache) Get(ctx context.Context, token string, businessID int64) ([]model.Product, bool) {
	data, err := c.rdb.Get(ctx, catalogKey(token, businessID)).Bytes()
	if err != nil {
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores the product list with a short TTL. Best effort — errors ignored.
func (c *CatalogCache) Set(ctx context.Context, token string, businessID int64, products []model.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, catalogKey(token, businessID), data, catalogTTL).Err()
}

// Invalidate drops every cached copy of a business catalog, across all
// tokens. Called after admin product writes so the next checkout session
// sees fresh prices and stock.
func (c *CatalogCache) Invalidate(ctx context.Context, businessID int64) {
	pattern := fmt.Sprintf("catalog:%d:*", businessID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = c.rdb.Del(ctx, iter.Val()).Err()
	}
}
