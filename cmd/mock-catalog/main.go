package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"freshcart/internal/catalog"
)

// Serves the bundled sample catalog at GET /products in any of the
// envelope shapes the normalizer recognizes. Point the api-server at it
// (FRESHCART_CATALOG_URL=http://localhost:9000) for offline development
// or for poking at shape handling.
func main() {
	var (
		addr  = flag.String("addr", ":9000", "listen address")
		shape = flag.String("shape", "products", "envelope shape: array, items, products or data")
	)
	flag.Parse()

	items := catalog.FallbackProducts()

	http.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		var body any
		switch *shape {
		case "array":
			body = items
		case "items":
			body = map[string]any{"items": items, "total": len(items)}
		case "data":
			body = map[string]any{"data": items, "total": len(items)}
		default:
			body = map[string]any{"products": items, "total": len(items)}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("[mock-catalog] encode: %v", err)
		}
	})

	log.Printf("mock-catalog serving %d products (%s shape) on %s", len(items), *shape, *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
