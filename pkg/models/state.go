package models

// SortDir is the price sort direction. Empty means no sort.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
	SortNone SortDir = ""
)

// Valid reports whether d is one of the three known directions.
func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc || d == SortNone
}

// ClientState is the whole persisted session state: pagination, filters,
// sort selection and the cart. It is serialized as a single blob and
// survives restarts.
type ClientState struct {
	Page      int        `json:"page"`     // 0-based
	PageSize  int        `json:"pageSize"`
	Search    string     `json:"search"`
	Category  string     `json:"category"` // exact match, empty = no filter
	PriceSort SortDir    `json:"priceSort"`
	Cart      []CartItem `json:"cart"`
}

// DefaultClientState returns the state a fresh session starts with.
func DefaultClientState() ClientState {
	return ClientState{
		Page:      0,
		PageSize:  10,
		Search:    "",
		Category:  "",
		PriceSort: SortNone,
		Cart:      []CartItem{},
	}
}
