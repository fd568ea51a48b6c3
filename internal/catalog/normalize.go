package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"freshcart/pkg/models"
)

// Defaults used when every upstream candidate field is absent.
const (
	DefaultTitle    = "Untitled"
	DefaultCategory = "Fruits & Vegetables"
	DefaultBrand    = "Fresho"
	DefaultWeight   = "1 kg"
)

// unknownListTotal is reported for bare-array envelopes, where the real
// catalog size is unknowable from a single page.
const unknownListTotal = 1000

// IndexHint identifies an item's position within a fetched page. It is
// used to synthesize a unique ID when upstream provides none.
type IndexHint struct {
	Page  int
	Index int
}

// NormalizeProduct converts one upstream raw object into the canonical
// form. It is total: every field of the result is populated, regardless
// of what the input holds, and it never panics.
//
// Each target field is resolved from an ordered list of candidate
// upstream names, first defined value wins. Running a canonical product
// back through this function yields an identical record.
func NormalizeProduct(raw map[string]any, hint IndexHint) models.Product {
	price := numberChain(raw, "price", "cost", "sellingPrice")

	mrp, ok := lookupNumber(raw, "mrp", "maxRetailPrice", "originalPrice")
	if !ok {
		mrp = price * 1.5
	}

	weight := stringChain(raw, DefaultWeight, "weight", "quantity", "unit")

	pricePerKg, ok := lookupNumber(raw, "pricePerKg")
	if !ok {
		pricePerKg = price / weightKilos(weight)
	}

	return models.Product{
		ID:          resolveID(raw, hint),
		Title:       stringChain(raw, DefaultTitle, "title", "name", "product_name", "productName"),
		Price:       price,
		MRP:         mrp,
		Discount:    discountPercent(price, mrp),
		Category:    stringChain(raw, DefaultCategory, "category", "category_name", "type", "categoryName"),
		Brand:       stringChain(raw, DefaultBrand, "brand", "brandName"),
		Weight:      weight,
		Image:       imageChain(raw, "image", "thumbnail", "images", "imageUrl"),
		Thumbnail:   imageChain(raw, "thumbnail", "image", "images", "imageUrl"),
		Description: stringChain(raw, "", "description", "desc", "productDescription"),
		Benefits:    stringChain(raw, "", "benefits", "healthBenefits"),
		PricePerKg:  pricePerKg,
	}
}

// NormalizeList converts an upstream list envelope into normalized items
// plus a total count. Recognized shapes, tried in order: a bare array,
// {items}, {products}, {results}/{data}. Anything else yields an empty
// list with total 0, which the query service treats as "no data".
func NormalizeList(data any, page int) ([]models.Product, int) {
	switch v := data.(type) {
	case []any:
		return normalizeItems(v, page), unknownListTotal
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			return normalizeItems(items, page), trustedTotal(v, len(items))
		}
		if items, ok := v["products"].([]any); ok {
			return normalizeItems(items, page), trustedTotal(v, len(items))
		}
		items, ok := v["results"].([]any)
		if !ok {
			items, ok = v["data"].([]any)
		}
		if ok {
			total := len(items)
			if t, found := lookupNumber(v, "total"); found && t > 0 {
				total = int(t)
			}
			return normalizeItems(items, page), total
		}
		return []models.Product{}, 0
	default:
		return []models.Product{}, 0
	}
}

// DecodeEnvelope parses a raw response body into the loose shape
// NormalizeList consumes. A body that is not valid JSON decodes to nil,
// which NormalizeList maps to empty/zero.
func DecodeEnvelope(body []byte) any {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}
	return data
}

func normalizeItems(items []any, page int) []models.Product {
	out := make([]models.Product, 0, len(items))
	for i, it := range items {
		raw, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, NormalizeProduct(raw, IndexHint{Page: page, Index: i}))
	}
	return out
}

// trustedTotal reads the envelope's own total when present (even zero),
// falling back to the item count.
func trustedTotal(env map[string]any, count int) int {
	if t, ok := lookupNumber(env, "total"); ok {
		return int(t)
	}
	return count
}

func resolveID(raw map[string]any, hint IndexHint) string {
	if v, ok := firstDefined(raw, "id", "_id", "productId"); ok {
		if s := asString(v); s != "" {
			return s
		}
	}
	return strconv.Itoa(hint.Page) + "-" + strconv.Itoa(hint.Index)
}

// discountPercent derives the percent off MRP. Guards: no discount when
// MRP does not exceed price, and no division by a zero MRP.
func discountPercent(price, mrp float64) int {
	if mrp <= price || mrp <= 0 {
		return 0
	}
	return int(math.Round((mrp - price) / mrp * 100))
}

// weightKilos extracts the numeric prefix of a weight string ("5 kg" ->
// 5). A string yielding no digits, or a non-positive number, counts as 1
// so the price-per-kg division is always defined.
func weightKilos(weight string) float64 {
	var b strings.Builder
	for _, r := range weight {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 1
	}
	return n
}

// firstDefined returns the first candidate key present in raw with a
// non-nil value.
func firstDefined(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringChain resolves a display field through its candidate keys,
// falling back to def when none is present.
func stringChain(raw map[string]any, def string, keys ...string) string {
	if v, ok := firstDefined(raw, keys...); ok {
		return asString(v)
	}
	return def
}

// imageChain is stringChain with one twist: the "images" candidate means
// the first element of an upstream image array.
func imageChain(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if k == "images" {
			arr, ok := v.([]any)
			if !ok || len(arr) == 0 || arr[0] == nil {
				continue
			}
			return asString(arr[0])
		}
		return asString(v)
	}
	return ""
}

// numberChain resolves a numeric field through its candidate keys;
// absent or unparseable values coerce to 0.
func numberChain(raw map[string]any, keys ...string) float64 {
	if n, ok := lookupNumber(raw, keys...); ok {
		return n
	}
	return 0
}

// lookupNumber is numberChain distinguishing "absent" from "zero": the
// second return is false only when no candidate key holds a parseable
// number.
func lookupNumber(raw map[string]any, keys ...string) (float64, bool) {
	v, ok := firstDefined(raw, keys...)
	if !ok {
		return 0, false
	}
	return asNumber(v)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		// integral IDs decode as float64; render them without a
		// trailing ".0" so "1" and 1 compare equal as strings
		if s == math.Trunc(s) && !math.IsInf(s, 0) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
