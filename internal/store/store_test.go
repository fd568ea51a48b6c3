package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshcart/pkg/models"
)

// memPersister records saves in memory so store behavior can be
// observed without SQLite.
type memPersister struct {
	snapshot *models.ClientState
	saves    int
	resets   int
}

func (m *memPersister) Load() (*models.ClientState, error) {
	return m.snapshot, nil
}

func (m *memPersister) Save(st models.ClientState) error {
	copied := st
	copied.Cart = append([]models.CartItem(nil), st.Cart...)
	m.snapshot = &copied
	m.saves++
	return nil
}

func (m *memPersister) Reset() error {
	m.snapshot = nil
	m.resets++
	return nil
}

func product(id, title string, price float64) models.Product {
	return models.Product{ID: id, Title: title, Price: price, Brand: "Fresho", Weight: "1 kg"}
}

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s, err := New(p)
	require.NoError(t, err)
	return s, p
}

func TestStore_Defaults(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, 0, s.Page())
	assert.Equal(t, 10, s.PageSize())
	assert.Equal(t, "", s.Search())
	assert.Equal(t, "", s.Category())
	assert.Equal(t, models.SortNone, s.PriceSort())
	assert.Empty(t, s.Cart())
}

// TestAddToCart_MergesQuantities: adding the same product twice grows
// one entry instead of duplicating it.
func TestAddToCart_MergesQuantities(t *testing.T) {
	s, _ := newTestStore(t)

	a := product("a", "Onion", 156)
	s.AddToCart(a, 2)
	s.AddToCart(a, 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "Onion", cart[0].Title)
}

func TestAddToCart_ClampsNonPositiveQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(product("a", "Onion", 156), 0)
	s.AddToCart(product("b", "Potato", 59), -4)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCart_SnapshotsProductByValue(t *testing.T) {
	s, _ := newTestStore(t)

	p := product("a", "Onion", 156)
	s.AddToCart(p, 1)

	// a later "catalog refresh" of the caller's copy must not reach the cart
	p.Title = "renamed"
	p.Price = 1

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "Onion", cart[0].Title)
	assert.Equal(t, float64(156), cart[0].Price)
}

// TestRemoveFromCart_AbsentIsNoop: removing an unknown ID neither errors
// nor changes the contents.
func TestRemoveFromCart_AbsentIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(product("a", "Onion", 156), 2)
	before := s.Cart()

	s.RemoveFromCart("nope")

	assert.Equal(t, before, s.Cart())
}

func TestRemoveFromCart_DeletesMatchingEntry(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(product("a", "Onion", 156), 1)
	s.AddToCart(product("b", "Potato", 59), 1)
	s.RemoveFromCart("a")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "b", cart[0].ID)
}

func TestTotalItems_RecomputedFromCart(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(product("a", "Onion", 156), 2)
	s.AddToCart(product("b", "Potato", 59), 3)

	assert.Equal(t, 5, s.TotalItems())

	s.RemoveFromCart("a")
	assert.Equal(t, 3, s.TotalItems())
}

func TestTotalPrice_SumsPriceTimesQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(product("a", "Onion", 156), 2)
	s.AddToCart(product("b", "Potato", 59), 1)

	assert.InDelta(t, 371, s.TotalPrice(), 1e-9)
}

func TestClearCart_LeavesOtherStateUntouched(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetPage(4)
	s.SetSearch("onion")
	s.SetCategory("Dairy")
	s.SetPriceSort(models.SortDesc)
	s.AddToCart(product("a", "Onion", 156), 2)

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Equal(t, 4, s.Page())
	assert.Equal(t, "onion", s.Search())
	assert.Equal(t, "Dairy", s.Category())
	assert.Equal(t, models.SortDesc, s.PriceSort())
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	s, p := newTestStore(t)

	s.SetSearch("milk")
	require.NotNil(t, p.snapshot)
	assert.Equal(t, "milk", p.snapshot.Search)

	s.AddToCart(product("a", "Onion", 156), 2)
	require.Len(t, p.snapshot.Cart, 1)
	assert.Equal(t, 2, p.snapshot.Cart[0].Quantity)
}

// TestNew_MigratesQuantitylessCartEntries: snapshots written before the
// quantity field existed decode with quantity 0 and must be upgraded to
// 1 at load, before any read.
func TestNew_MigratesQuantitylessCartEntries(t *testing.T) {
	p := &memPersister{snapshot: &models.ClientState{
		Page:     2,
		PageSize: 10,
		Cart: []models.CartItem{
			{Product: product("a", "Onion", 156)},
			{Product: product("b", "Potato", 59), Quantity: 3},
			{Product: product("c", "Carrot", 35), Quantity: -1},
		},
	}}

	s, err := New(p)
	require.NoError(t, err)

	cart := s.Cart()
	require.Len(t, cart, 3)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 3, cart[1].Quantity)
	assert.Equal(t, 1, cart[2].Quantity)
	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, 2, s.Page())
}

func TestResetStorage_ClearsCartAndWipesSnapshot(t *testing.T) {
	s, p := newTestStore(t)

	s.SetPage(3)
	s.AddToCart(product("a", "Onion", 156), 2)
	require.NotNil(t, p.snapshot)

	s.ResetStorage()

	assert.Empty(t, s.Cart())
	assert.Equal(t, 1, p.resets)
	assert.Nil(t, p.snapshot)
	// in-session pagination survives until the next load
	assert.Equal(t, 3, s.Page())
}

func TestStore_NotifiesOnMutation(t *testing.T) {
	s, _ := newTestStore(t)

	var events []Event
	id := s.Subscribe(func(ev Event) {
		events = append(events, ev)
	})

	s.AddToCart(product("a", "Onion", 156), 2)
	s.RemoveFromCart("a")
	s.SetSearch("milk")

	require.Len(t, events, 3)
	assert.Equal(t, EventCartAdd, events[0].Type)
	assert.Equal(t, "a", events[0].ProductID)
	assert.Equal(t, 2, events[0].Quantity)
	assert.Equal(t, 2, events[0].TotalItems)
	assert.Equal(t, EventCartRemove, events[1].Type)
	assert.Equal(t, 0, events[1].TotalItems)
	assert.Equal(t, EventFilters, events[2].Type)
	assert.False(t, events[2].At.IsZero())

	s.Unsubscribe(id)
	s.SetPage(1)
	assert.Len(t, events, 3)
}

func TestStore_WithoutPersister(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	s.AddToCart(product("a", "Onion", 156), 1)
	assert.Equal(t, 1, s.TotalItems())
}
