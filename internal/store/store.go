package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"freshcart/pkg/models"
)

// Store owns the whole session state: pagination, filters, sort and the
// cart. Mutations are atomic read-modify-write under one lock (the HTTP
// surface makes them reachable from concurrent handlers), persist the
// full snapshot, and notify subscribers.
//
// Cart entries hold product snapshots by value; a catalog refresh never
// rewrites items already in the cart.
type Store struct {
	mu        sync.Mutex
	state     models.ClientState
	persister Persister
	subs      map[string]func(Event)
}

// New builds a store from the persisted snapshot when one exists,
// otherwise from defaults. Loading migrates older snapshots: every cart
// entry without a positive quantity gets quantity 1, once, here.
func New(p Persister) (*Store, error) {
	s := &Store{
		state:     models.DefaultClientState(),
		persister: p,
		subs:      make(map[string]func(Event)),
	}

	if p == nil {
		return s, nil
	}

	loaded, err := p.Load()
	if err != nil {
		return nil, err
	}
	if loaded != nil {
		s.state = migrate(*loaded)
	}
	return s, nil
}

// migrate upgrades a snapshot written by an older schema. Cart entries
// used to be stored without a quantity field; those decode as 0 and are
// bumped to 1 before the store becomes usable.
func migrate(st models.ClientState) models.ClientState {
	if st.Cart == nil {
		st.Cart = []models.CartItem{}
	}
	for i := range st.Cart {
		if st.Cart[i].Quantity <= 0 {
			st.Cart[i].Quantity = 1
		}
	}
	if st.PageSize <= 0 {
		st.PageSize = 10
	}
	return st
}

// Subscribe registers a mutation listener and returns a token for
// Unsubscribe. Listeners run on the mutating goroutine after the state
// lock is released.
func (s *Store) Subscribe(fn func(Event)) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()
	return id
}

func (s *Store) Unsubscribe(id string) {
	s.mu.Lock()
	delete(s.subs, id)
	s.mu.Unlock()
}

func (s *Store) SetPage(p int) {
	s.mutate(Event{Type: EventPagination}, func(st *models.ClientState) {
		st.Page = p
	})
}

func (s *Store) SetPageSize(n int) {
	s.mutate(Event{Type: EventPagination}, func(st *models.ClientState) {
		st.PageSize = n
	})
}

func (s *Store) SetSearch(q string) {
	s.mutate(Event{Type: EventFilters}, func(st *models.ClientState) {
		st.Search = q
	})
}

func (s *Store) SetCategory(c string) {
	s.mutate(Event{Type: EventFilters}, func(st *models.ClientState) {
		st.Category = c
	})
}

func (s *Store) SetPriceSort(dir models.SortDir) {
	s.mutate(Event{Type: EventFilters}, func(st *models.ClientState) {
		st.PriceSort = dir
	})
}

// AddToCart merges by product ID: an existing entry's quantity grows by
// quantity, a new entry is appended with a snapshot of the product.
// Non-positive quantities count as 1.
func (s *Store) AddToCart(p models.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}

	ev := Event{Type: EventCartAdd, ProductID: p.ID, Quantity: quantity}
	s.mutate(ev, func(st *models.ClientState) {
		for i := range st.Cart {
			if st.Cart[i].ID == p.ID {
				st.Cart[i].Quantity += quantity
				return
			}
		}
		st.Cart = append(st.Cart, models.CartItem{Product: p, Quantity: quantity})
	})
}

// RemoveFromCart deletes the entry with the given ID. Removing an absent
// ID is a no-op, not an error.
func (s *Store) RemoveFromCart(id string) {
	s.mutate(Event{Type: EventCartRemove, ProductID: id}, func(st *models.ClientState) {
		kept := make([]models.CartItem, 0, len(st.Cart))
		for _, it := range st.Cart {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		st.Cart = kept
	})
}

// ClearCart empties the cart; pagination, filters and sort are untouched.
func (s *Store) ClearCart() {
	s.mutate(Event{Type: EventCartClear}, func(st *models.ClientState) {
		st.Cart = []models.CartItem{}
	})
}

// ResetStorage clears the cart and discards the whole persisted snapshot;
// the next session starts from defaults.
func (s *Store) ResetStorage() {
	s.mu.Lock()
	s.state.Cart = []models.CartItem{}
	if s.persister != nil {
		if err := s.persister.Reset(); err != nil {
			log.Printf("[store] reset storage: %v", err)
		}
	}
	ev := Event{Type: EventCartReset, TotalItems: 0, At: time.Now().UTC()}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// TotalItems sums the cart quantities. Always recomputed from the cart,
// never stored, so it cannot drift.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.state.Cart)
}

// TotalPrice sums price*quantity over the cart.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.state.Cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Page
}

func (s *Store) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PageSize
}

func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Search
}

func (s *Store) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Category
}

func (s *Store) PriceSort() models.SortDir {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PriceSort
}

// Cart returns a copy of the cart entries.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.state.Cart))
	copy(out, s.state.Cart)
	return out
}

// State returns a snapshot copy of the whole state.
func (s *Store) State() models.ClientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Cart = make([]models.CartItem, len(s.state.Cart))
	copy(st.Cart, s.state.Cart)
	return st
}

// mutate applies fn to the state under the lock, persists the snapshot,
// then notifies subscribers outside the lock.
func (s *Store) mutate(ev Event, fn func(*models.ClientState)) {
	s.mu.Lock()
	fn(&s.state)
	if s.persister != nil {
		if err := s.persister.Save(s.state); err != nil {
			log.Printf("[store] persist: %v", err)
		}
	}
	ev.TotalItems = totalItems(s.state.Cart)
	ev.At = time.Now().UTC()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (s *Store) snapshotSubs() []func(Event) {
	out := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func totalItems(cart []models.CartItem) int {
	total := 0
	for _, it := range cart {
		total += it.Quantity
	}
	return total
}
