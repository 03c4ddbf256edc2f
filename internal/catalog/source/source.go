// Package source provides the catalog "external collaborator": providers
// that materialize the finite in-memory product list the filter pipeline
// consumes, plus a cache that holds the current snapshot.
package source

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/talkbazaar/storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Source fetches the whole product catalog. Fetch failures are opaque to the
// core; callers decide the retry policy.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// Cache holds the current catalog snapshot. Refresh swaps the snapshot
// atomically; concurrent refreshes collapse into one fetch.
type Cache struct {
	mu       sync.RWMutex
	products []domain.Product
	source   Source
	group    singleflight.Group
}

func NewCache(src Source) *Cache {
	return &Cache{source: src}
}

// Refresh re-fetches the catalog from the source and replaces the snapshot.
// Concurrent callers share a single in-flight fetch.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		products, err := c.source.Fetch(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "catalog fetch")
		}
		c.mu.Lock()
		c.products = products
		c.mu.Unlock()
		zap.S().Infof("catalog refreshed, %d products", len(products))
		return nil, nil
	})
	return err
}

// Products returns the current snapshot. The returned slice is a copy; the
// products themselves are immutable by contract.
func (c *Cache) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product(nil), c.products...)
}

// Count returns the snapshot size.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// ProductByID scans the snapshot for a product.
func (c *Cache) ProductByID(id int64) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

// Static is a fixed in-memory source, used in tests and as the "none"
// catalog source.
type Static []domain.Product

func (s Static) Fetch(ctx context.Context) ([]domain.Product, error) {
	return s, nil
}
