package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"freshcart/pkg/models"
)

// Querier is the catalog read contract consumed by the presentation
// layer: two idempotent operations, cheap to re-invoke.
type Querier interface {
	ListProducts(ctx context.Context, page, pageSize int) models.ProductsPage
	GetProductByID(ctx context.Context, id string) *models.Product
}

// Cache wraps a Querier with a short-lived result cache keyed by
// (operation, parameters). A result younger than the stale window is
// served without refetching; concurrent callers for the same key share
// one in-flight fetch; when fetches for the same key overlap, whichever
// settles last owns the cached value.
type Cache struct {
	src Querier
	ttl time.Duration

	mu       sync.Mutex
	entries  map[string]cacheEntry
	inflight map[string]*inflightCall
}

type cacheEntry struct {
	val any
	at  time.Time
}

type inflightCall struct {
	done chan struct{}
	val  any
}

func NewCache(src Querier, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Cache{
		src:      src,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string]*inflightCall),
	}
}

func (c *Cache) ListProducts(ctx context.Context, page, pageSize int) models.ProductsPage {
	key := fmt.Sprintf("products|%d|%d", page, pageSize)
	val := c.do(key, func() any {
		return c.src.ListProducts(ctx, page, pageSize)
	})
	return val.(models.ProductsPage)
}

func (c *Cache) GetProductByID(ctx context.Context, id string) *models.Product {
	key := "product|" + id
	val := c.do(key, func() any {
		return c.src.GetProductByID(ctx, id)
	})
	return val.(*models.Product)
}

// Invalidate drops every cached entry; the next call per key refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Cache) do(key string, fetch func() any) any {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && time.Since(e.at) < c.ttl {
		c.mu.Unlock()
		return e.val
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		<-call.done
		return call.val
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	val := fetch()

	c.mu.Lock()
	call.val = val
	c.entries[key] = cacheEntry{val: val, at: time.Now()}
	if c.inflight[key] == call {
		delete(c.inflight, key)
	}
	c.mu.Unlock()

	close(call.done)
	return val
}
