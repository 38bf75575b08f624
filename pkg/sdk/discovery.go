package sdk

import (
	"os"
	"strings"
)

const (
	DefaultAccountAddr = "http://localhost:3001"
	DefaultCatalogAddr = "http://localhost:5000"
)

// NewFromEnv connects to the services named by GAMINGTECH_ACCOUNT_ADDR and
// GAMINGTECH_CATALOG_ADDR, falling back to the local development ports.
// GAMINGTECH_TLS_SKIP_VERIFY=true accepts self-signed certificates.
func NewFromEnv(opts ...Option) *Client {
	account := envOr("GAMINGTECH_ACCOUNT_ADDR", DefaultAccountAddr)
	catalog := envOr("GAMINGTECH_CATALOG_ADDR", DefaultCatalogAddr)
	if os.Getenv("GAMINGTECH_TLS_SKIP_VERIFY") == "true" {
		opts = append([]Option{WithInsecureTLS()}, opts...)
	}
	return Connect(account, catalog, opts...)
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if !strings.Contains(v, "://") {
		v = "http://" + v
	}
	return strings.TrimRight(v, "/")
}
