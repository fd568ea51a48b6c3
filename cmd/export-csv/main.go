package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"freshcart/internal/catalog"
	"freshcart/pkg/models"
	"freshcart/pkg/utils"
)

// Fetches the catalog straight from the remote service (no api-server
// needed), normalizes it, and writes CSV plus JSON snapshots. Falls back
// to the bundled dataset like every other catalog read.
func main() {
	var (
		csvOut  = flag.String("csv", "data/products.csv", "output CSV path")
		jsonOut = flag.String("json", "", "optional output JSON path")
		pages   = flag.Int("pages", 5, "how many pages to fetch")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	svc := catalog.NewService(utils.LoadCatalogConfig())

	var all []models.Product
	seen := map[string]bool{}
	for page := 0; page < *pages; page++ {
		result := svc.ListProducts(ctx, page, 50)
		fresh := 0
		for _, p := range result.Items {
			if !seen[p.ID] {
				seen[p.ID] = true
				all = append(all, p)
				fresh++
			}
		}
		// fallback pages repeat; stop once nothing new shows up
		if fresh == 0 {
			break
		}
	}

	if err := writeCSV(*csvOut, all); err != nil {
		log.Fatalf("write csv failed: %v", err)
	}
	log.Printf("✅ exported %d products to %s", len(all), *csvOut)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, all); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		log.Printf("✅ exported %d products to %s", len(all), *jsonOut)
	}
}

func writeCSV(path string, items []models.Product) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "title", "brand", "category", "price", "mrp", "discount", "weight", "price_per_kg"}); err != nil {
		return err
	}
	for _, p := range items {
		rec := []string{
			p.ID,
			p.Title,
			p.Brand,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.FormatFloat(p.MRP, 'f', 2, 64),
			strconv.Itoa(p.Discount),
			p.Weight,
			strconv.FormatFloat(p.PricePerKg, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, items []models.Product) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
