package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshcart/pkg/models"
)

// countingQuerier counts upstream hits and can block until released, to
// observe in-flight coalescing.
type countingQuerier struct {
	listCalls int32
	getCalls  int32
	gate      chan struct{} // when set, ListProducts waits on it
}

func (q *countingQuerier) ListProducts(ctx context.Context, page, pageSize int) models.ProductsPage {
	atomic.AddInt32(&q.listCalls, 1)
	if q.gate != nil {
		<-q.gate
	}
	return models.ProductsPage{
		Items:    []models.Product{{ID: "1", Title: "Onion"}},
		Total:    1,
		Page:     page,
		PageSize: pageSize,
	}
}

func (q *countingQuerier) GetProductByID(ctx context.Context, id string) *models.Product {
	atomic.AddInt32(&q.getCalls, 1)
	if id == "missing" {
		return nil
	}
	return &models.Product{ID: id}
}

func TestCache_ServesFreshResultWithoutRefetch(t *testing.T) {
	q := &countingQuerier{}
	c := NewCache(q, time.Minute)

	first := c.ListProducts(context.Background(), 0, 10)
	second := c.ListProducts(context.Background(), 0, 10)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&q.listCalls))
}

func TestCache_KeysByOperationAndParameters(t *testing.T) {
	q := &countingQuerier{}
	c := NewCache(q, time.Minute)

	c.ListProducts(context.Background(), 0, 10)
	c.ListProducts(context.Background(), 1, 10)
	c.ListProducts(context.Background(), 0, 20)

	assert.Equal(t, int32(3), atomic.LoadInt32(&q.listCalls))
}

func TestCache_StaleEntryRefetches(t *testing.T) {
	q := &countingQuerier{}
	c := NewCache(q, 10*time.Millisecond)

	c.ListProducts(context.Background(), 0, 10)
	time.Sleep(25 * time.Millisecond)
	c.ListProducts(context.Background(), 0, 10)

	assert.Equal(t, int32(2), atomic.LoadInt32(&q.listCalls))
}

func TestCache_CachesNotFoundLookups(t *testing.T) {
	q := &countingQuerier{}
	c := NewCache(q, time.Minute)

	assert.Nil(t, c.GetProductByID(context.Background(), "missing"))
	assert.Nil(t, c.GetProductByID(context.Background(), "missing"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&q.getCalls))

	p := c.GetProductByID(context.Background(), "7")
	require.NotNil(t, p)
	assert.Equal(t, "7", p.ID)
}

// TestCache_CoalescesInflightCalls: concurrent callers for the same key
// share one upstream fetch.
func TestCache_CoalescesInflightCalls(t *testing.T) {
	q := &countingQuerier{gate: make(chan struct{})}
	c := NewCache(q, time.Minute)

	const callers = 8
	results := make([]models.ProductsPage, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.ListProducts(context.Background(), 0, 10)
		}(i)
	}

	// let the goroutines pile up on the single in-flight call
	time.Sleep(20 * time.Millisecond)
	close(q.gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&q.listCalls))
	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	q := &countingQuerier{}
	c := NewCache(q, time.Minute)

	c.ListProducts(context.Background(), 0, 10)
	c.Invalidate()
	c.ListProducts(context.Background(), 0, 10)

	assert.Equal(t, int32(2), atomic.LoadInt32(&q.listCalls))
}
