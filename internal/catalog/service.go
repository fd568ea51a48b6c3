package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"freshcart/pkg/models"
	"freshcart/pkg/utils"
)

// Service is the two-tier catalog source: the remote catalog API first,
// the bundled fallback dataset when the remote is unreachable or returns
// nothing usable. Both query operations always produce a usable result;
// transport failures are logged, never returned.
type Service struct {
	BaseURL string
	Client  *http.Client
}

func NewService(cfg utils.CatalogConfig) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Service{
		BaseURL: cfg.BaseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// ListProducts fetches one catalog page. The input page is 0-based; the
// remote API counts from 1. Page and pageSize are echoed back as given.
func (s *Service) ListProducts(ctx context.Context, page, pageSize int) models.ProductsPage {
	data, err := s.fetch(ctx, map[string]string{"page": fmt.Sprintf("%d", page+1)})
	if err != nil {
		log.Printf("[catalog] list page %d: %v; serving fallback data", page, err)
		return fallbackPage(page, pageSize)
	}

	items, total := NormalizeList(data, page)
	if len(items) == 0 {
		log.Printf("[catalog] list page %d: empty or unrecognized response; serving fallback data", page)
		return fallbackPage(page, pageSize)
	}

	return models.ProductsPage{Items: items, Total: total, Page: page, PageSize: pageSize}
}

// GetProductByID fetches the full collection and scans it for a matching
// ID, compared as strings so numeric and string IDs collate. It returns
// nil only for a genuine miss: a fetch that succeeded with no matching
// entry, or an ID absent from the fallback dataset too. When the remote
// is unreachable the lookup runs against the fallback dataset so the
// detail view stays renderable.
func (s *Service) GetProductByID(ctx context.Context, id string) *models.Product {
	data, err := s.fetch(ctx, nil)
	if err != nil {
		log.Printf("[catalog] get %q: %v; trying fallback data", id, err)
		return findByID(fallbackProducts, id)
	}

	items, _ := NormalizeList(data, 0)
	return findByID(items, id)
}

func (s *Service) fetch(ctx context.Context, params map[string]string) (any, error) {
	u, err := url.Parse(s.BaseURL + "/products")
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	data := DecodeEnvelope(body)
	if data == nil {
		return nil, fmt.Errorf("malformed body")
	}
	return data, nil
}

func fallbackPage(page, pageSize int) models.ProductsPage {
	items := FallbackProducts()
	return models.ProductsPage{
		Items:    items,
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}
}

func findByID(items []models.Product, id string) *models.Product {
	for i := range items {
		if items[i].ID == id {
			p := items[i]
			return &p
		}
	}
	return nil
}
