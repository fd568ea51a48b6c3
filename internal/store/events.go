package store

import "time"

// Event types emitted on every state mutation.
const (
	EventCartAdd    = "cart.add"
	EventCartRemove = "cart.remove"
	EventCartClear  = "cart.clear"
	EventCartReset  = "cart.reset"
	EventFilters    = "filters.update"
	EventPagination = "pagination.update"
)

// Event describes one state mutation for subscribers (in-process
// listeners and the sync hub's wire clients).
type Event struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	TotalItems int       `json:"total_items"`
	At         time.Time `json:"at"`
}
