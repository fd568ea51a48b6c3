package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// best-effort .env load; real env vars win
	_ = godotenv.Load()
}

// DefaultCatalogURL is the deployed catalog-management service the
// storefront reads from.
const DefaultCatalogURL = "https://catalog-management-system-dev-ak3ogf6zeauc.a.run.app/cms"

type CatalogConfig struct {
	BaseURL  string
	Timeout  time.Duration
	StaleTTL time.Duration // how long a cached query result is served without refetching
}

func LoadCatalogConfig() CatalogConfig {
	base := os.Getenv("FRESHCART_CATALOG_URL")
	if base == "" {
		base = DefaultCatalogURL
	}

	return CatalogConfig{
		BaseURL:  base,
		Timeout:  12 * time.Second,
		StaleTTL: durationEnv("FRESHCART_STALE_TTL_SECONDS", 10*time.Second),
	}
}

type ServerConfig struct {
	HTTPAddr string
	SyncAddr string // TCP event stream
}

func LoadServerConfig() ServerConfig {
	httpAddr := os.Getenv("FRESHCART_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	syncAddr := os.Getenv("FRESHCART_SYNC_ADDR")
	if syncAddr == "" {
		syncAddr = ":7070"
	}

	return ServerConfig{HTTPAddr: httpAddr, SyncAddr: syncAddr}
}

// durationEnv reads a whole-seconds env var; falls back on def when
// unset or unparseable.
func durationEnv(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
