package memory

import (
	"context"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
)

var _ ports.CatalogCache = (*CatalogCache)(nil)

// CatalogCache — снимки каталога по ключу. TTL фиксированный, чтение его не продлевает.
type CatalogCache struct {
	lru *LRUCacheTTL[string, []domain.Product]
}

func NewCatalogCache(capacity int, ttl time.Duration) *CatalogCache {
	return &CatalogCache{lru: NewLRUCacheTTL[string](Options[[]domain.Product]{
		Name:     "catalog",
		Capacity: capacity,
		TTL:      ttl,
		Clone:    domain.CloneProducts,
	})}
}

func (c *CatalogCache) Get(_ context.Context, key string) ([]domain.Product, bool) {
	return c.lru.Get(key)
}

func (c *CatalogCache) Set(_ context.Context, key string, products []domain.Product) error {
	if key == "" {
		return nil
	}
	c.lru.Set(key, products)
	return nil
}
