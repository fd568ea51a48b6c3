package catalog

import (
	"sort"
	"strings"

	"freshcart/pkg/models"
)

// Query holds the client-side catalog selections. Filtering is a plain
// linear scan over the fetched page, not a remote search.
type Query struct {
	Search    string         // case-insensitive substring of title or brand
	Category  string         // exact match, empty = all
	Brands    []string       // any-of match, empty = all
	PriceSort models.SortDir
}

// ApplyQuery filters and sorts a copy of items; the input slice is never
// mutated. The sort is stable so equal-priced items keep their catalog
// order.
func ApplyQuery(items []models.Product, q Query) []models.Product {
	out := make([]models.Product, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if len(q.Brands) > 0 && !containsFold(q.Brands, p.Brand) {
			continue
		}
		out = append(out, p)
	}

	switch q.PriceSort {
	case models.SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(strings.TrimSpace(x), v) {
			return true
		}
	}
	return false
}
