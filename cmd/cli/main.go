package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"freshcart/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

func main() {
	global := flag.NewFlagSet("freshcart", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "products":
		handleProducts(ctx, client, *baseURL, sub, args[2:])
	case "cart":
		handleCart(ctx, client, *baseURL, sub, args[2:])
	case "state":
		handleState(ctx, client, *baseURL, sub, args[2:])
	case "watch":
		handleWatch(*baseURL, sub, args[2:])
	case "export":
		handleExport(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleProducts(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("products list", flag.ExitOnError)
		page := fs.Int("page", 0, "0-based page")
		pageSize := fs.Int("page-size", 10, "items per page")
		search := fs.String("search", "", "title/brand substring")
		category := fs.String("category", "", "exact category")
		sortDir := fs.String("sort", "", "price sort: asc or desc")
		brands := fs.String("brands", "", "comma-separated brand filter")
		_ = fs.Parse(args)

		q := url.Values{}
		q.Set("page", strconv.Itoa(*page))
		q.Set("pageSize", strconv.Itoa(*pageSize))
		if *search != "" {
			q.Set("search", *search)
		}
		if *category != "" {
			q.Set("category", *category)
		}
		if *sortDir != "" {
			q.Set("sort", *sortDir)
		}
		if *brands != "" {
			q.Set("brands", *brands)
		}

		var resp models.ProductsPage
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products?"+q.Encode(), nil, &resp); err != nil {
			log.Fatalf("list products failed: %v", err)
		}

		fmt.Printf("page %d of %d total\n", resp.Page, resp.Total)
		for _, p := range resp.Items {
			fmt.Printf("  [%s] %-32s ₹%.2f (%d%% off, %s) %s\n",
				p.ID, p.Title, p.Price, p.Discount, p.Weight, p.Brand)
		}
	case "get":
		if len(args) == 0 {
			log.Fatal("usage: products get <id>")
		}
		var p models.Product
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products/"+url.PathEscape(args[0]), nil, &p); err != nil {
			log.Fatalf("get product failed: %v", err)
		}
		printJSON(p)
	default:
		fmt.Println("usage: products list|get")
		os.Exit(1)
	}
}

func handleCart(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "show":
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/cart", nil, &resp); err != nil {
			log.Fatalf("show cart failed: %v", err)
		}
		if len(resp.Items) == 0 {
			fmt.Println("cart is empty")
			return
		}
		for _, it := range resp.Items {
			fmt.Printf("  [%s] %-32s ₹%.2f x %d = ₹%.2f\n",
				it.ID, it.Title, it.Price, it.Quantity, it.Price*float64(it.Quantity))
		}
		fmt.Printf("total: %d items, ₹%.2f\n", resp.TotalItems, resp.TotalPrice)
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		qty := fs.Int("qty", 1, "quantity (1-10)")
		_ = fs.Parse(args)

		if *id == "" {
			log.Fatal("product id is required")
		}

		// snapshot the product first, then merge it into the cart
		var p models.Product
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products/"+url.PathEscape(*id), nil, &p); err != nil {
			log.Fatalf("product %s not found: %v", *id, err)
		}

		payload := map[string]any{"product": p, "quantity": *qty}
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/cart", payload, &resp); err != nil {
			log.Fatalf("add to cart failed: %v", err)
		}
		fmt.Printf("✅ added %s x %d (cart now holds %d items)\n", p.Title, *qty, resp.TotalItems)
	case "remove":
		if len(args) == 0 {
			log.Fatal("usage: cart remove <id>")
		}
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/cart/"+url.PathEscape(args[0]), nil, &resp); err != nil {
			log.Fatalf("remove from cart failed: %v", err)
		}
		fmt.Printf("✅ removed (cart now holds %d items)\n", resp.TotalItems)
	case "clear":
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/cart", nil, &resp); err != nil {
			log.Fatalf("clear cart failed: %v", err)
		}
		fmt.Println("✅ cart cleared")
	case "total":
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/cart/total", nil, &resp); err != nil {
			log.Fatalf("cart total failed: %v", err)
		}
		fmt.Printf("%d items, ₹%.2f\n", resp.TotalItems, resp.TotalPrice)
	case "reset":
		var resp cartResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/cart/reset", nil, &resp); err != nil {
			log.Fatalf("reset storage failed: %v", err)
		}
		fmt.Println("✅ cart cleared and persisted state wiped")
	default:
		fmt.Println("usage: cart show|add|remove|clear|total|reset")
		os.Exit(1)
	}
}

func handleState(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "show":
		var st models.ClientState
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/state", nil, &st); err != nil {
			log.Fatalf("show state failed: %v", err)
		}
		printJSON(st)
	case "set":
		fs := flag.NewFlagSet("state set", flag.ExitOnError)
		page := fs.Int("page", -1, "0-based page")
		pageSize := fs.Int("page-size", -1, "items per page")
		search := fs.String("search", "\x00", "search text")
		category := fs.String("category", "\x00", "category filter")
		sortDir := fs.String("sort", "\x00", "price sort: asc, desc or none")
		_ = fs.Parse(args)

		if *page >= 0 {
			mustPut(ctx, client, baseURL+"/state/page", map[string]any{"page": *page})
		}
		if *pageSize >= 0 {
			mustPut(ctx, client, baseURL+"/state/page-size", map[string]any{"pageSize": *pageSize})
		}
		if *search != "\x00" {
			mustPut(ctx, client, baseURL+"/state/search", map[string]any{"search": *search})
		}
		if *category != "\x00" {
			mustPut(ctx, client, baseURL+"/state/category", map[string]any{"category": *category})
		}
		if *sortDir != "\x00" {
			dir := *sortDir
			if dir == "none" {
				dir = ""
			}
			mustPut(ctx, client, baseURL+"/state/price-sort", map[string]any{"priceSort": dir})
		}

		var st models.ClientState
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/state", nil, &st); err != nil {
			log.Fatalf("show state failed: %v", err)
		}
		printJSON(st)
	default:
		fmt.Println("usage: state show|set")
		os.Exit(1)
	}
}

func handleWatch(baseURL, sub string, args []string) {
	switch sub {
	case "tcp":
		fs := flag.NewFlagSet("watch tcp", flag.ExitOnError)
		addr := fs.String("addr", "127.0.0.1:7070", "TCP sync address")
		_ = fs.Parse(args)
		if err := runWatchTCP(*addr); err != nil {
			log.Fatalf("watch tcp failed: %v", err)
		}
	case "ws":
		wsURL, err := websocketURL(baseURL, "/ws")
		if err != nil {
			log.Fatalf("bad ws url: %v", err)
		}
		if err := runWatchWS(wsURL); err != nil {
			log.Fatalf("watch ws failed: %v", err)
		}
	default:
		fmt.Println("usage: watch tcp|ws")
		os.Exit(1)
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output path (default products.json / products.csv)")
	pageSize := fs.Int("page-size", 50, "items per page while fetching")
	_ = fs.Parse(args)

	items, err := fetchAllProducts(ctx, client, baseURL, *pageSize)
	if err != nil {
		log.Fatalf("fetch products failed: %v", err)
	}

	switch sub {
	case "json":
		path := *out
		if path == "" {
			path = "products.json"
		}
		if err := writeJSON(path, items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		fmt.Printf("✅ exported %d products to %s\n", len(items), path)
	case "csv":
		path := *out
		if path == "" {
			path = "products.csv"
		}
		if err := writeCSV(path, items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		fmt.Printf("✅ exported %d products to %s\n", len(items), path)
	default:
		fmt.Println("usage: export json|csv")
		os.Exit(1)
	}
}

func runWatchTCP(addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[watch] connected to %s", addr)

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		prettyPrintLine(sc.Bytes())
	}
	return sc.Err()
}

func runWatchWS(wsURL string) error {
	c, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer c.Close()

	log.Printf("[watch] connected to %s", wsURL)

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			return err
		}
		prettyPrintLine(bytes.TrimSpace(msg))
	}
}

func prettyPrintLine(line []byte) {
	var obj map[string]any
	if err := json.Unmarshal(line, &obj); err != nil {
		fmt.Println(string(line))
		return
	}
	b, _ := json.MarshalIndent(obj, "", "  ")
	fmt.Println(string(b))
}

// fetchAllProducts pages through the catalog until a short page or the
// reported total is reached.
func fetchAllProducts(ctx context.Context, client *http.Client, baseURL string, pageSize int) ([]models.Product, error) {
	var all []models.Product
	seen := map[string]bool{}

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("pageSize", strconv.Itoa(pageSize))

		var resp models.ProductsPage
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products?"+q.Encode(), nil, &resp); err != nil {
			return nil, err
		}
		if len(resp.Items) == 0 {
			break
		}

		fresh := 0
		for _, p := range resp.Items {
			if !seen[p.ID] {
				seen[p.ID] = true
				all = append(all, p)
				fresh++
			}
		}

		// fallback pages repeat; stop once nothing new shows up
		if fresh == 0 || len(all) >= resp.Total {
			break
		}
	}
	return all, nil
}

func writeJSON(path string, items []models.Product) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"id", "title", "brand", "category", "price", "mrp", "discount", "weight", "price_per_kg"}
	if err := w.Write(header); err != nil {
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

func mustPut(ctx context.Context, client *http.Client, endpoint string, payload any) {
	if err := doJSON(ctx, client, http.MethodPut, endpoint, payload, nil); err != nil {
		log.Fatalf("update failed: %v", err)
	}
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(b))
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = path
	return u.String(), nil
}

func printUsage() {
	fmt.Println(`freshcart CLI

usage: freshcart [-api URL] <command> <subcommand> [flags]

commands:
  products list [-page N] [-page-size N] [-search S] [-category C] [-sort asc|desc] [-brands a,b]
  products get <id>
  cart show|add|remove|clear|total|reset
  cart add -id <product-id> [-qty N]
  cart remove <product-id>
  state show
  state set [-page N] [-page-size N] [-search S] [-category C] [-sort asc|desc|none]
  watch tcp [-addr HOST:PORT]
  watch ws
  export json|csv [-out PATH] [-page-size N]`)
}
