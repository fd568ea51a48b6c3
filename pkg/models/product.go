package models

// Product is the normalized, canonical form of a catalog item used by
// every layer above the catalog client.
//
// Upstream responses name these fields inconsistently (title vs name,
// mrp vs originalPrice, ...); everything is mapped into this structure
// first, with a defined default for every field, so the UI never sees a
// partially populated product.
type Product struct {
	ID          string  `json:"id"`          // canonical ID; synthesized from page+index when upstream has none
	Title       string  `json:"title"`       // display name, "Untitled" when absent upstream
	Price       float64 `json:"price"`       // current selling price
	MRP         float64 `json:"mrp"`         // maximum retail price; price*1.5 when absent
	Discount    int     `json:"discount"`    // percent off MRP, 0 when MRP <= price
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Weight      string  `json:"weight"`     // e.g. "5 kg", "250 g"
	Image       string  `json:"image"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
	Benefits    string  `json:"benefits"`
	PricePerKg  float64 `json:"pricePerKg"` // price / numeric part of weight when not supplied
}

// CartItem is a product snapshot plus the quantity in the cart.
// The product fields are copied at add-time; a later catalog refresh
// does not change items already in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// ProductsPage is the envelope returned by the catalog query service.
// Page and PageSize echo the caller's 0-based request, they are not
// derived from the upstream response.
type ProductsPage struct {
	Items    []Product `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}
