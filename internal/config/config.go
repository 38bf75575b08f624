// Package config loads the runtime settings of the GamingTech services from
// the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/joho/godotenv"
)

// Development fallbacks. They are insecure and must be overridden in any
// shared deployment.
const (
	DefaultJWTSecret     = "your-secret-key-change-in-production"
	DefaultAccountPort   = "3001"
	DefaultCatalogPort   = "5000"
	DefaultDataFile      = "./data/users.json"
	DefaultAdminEmail    = "admin@gamingtechpro.com"
	DefaultAdminPassword = "admin123"
)

// Config holds the settings of both services; each binary reads the fields it
// needs.
type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	AccountPort   string
	CatalogPort   string
	DataFile      string
	SeedAdmin     bool
	AdminEmail    string
	AdminPassword string
	DisableTLS    bool
	LogLevel      logging.Level
	LogJSON       bool
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		JWTSecret:     DefaultJWTSecret,
		TokenTTL:      7 * 24 * time.Hour,
		BcryptCost:    12,
		AccountPort:   DefaultAccountPort,
		CatalogPort:   DefaultCatalogPort,
		DataFile:      DefaultDataFile,
		SeedAdmin:     true,
		AdminEmail:    DefaultAdminEmail,
		AdminPassword: DefaultAdminPassword,
		DisableTLS:    true,
		LogLevel:      logging.InfoLevel,
	}
}

// Load reads the optional .env file in the working directory and then the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, applying Defaults for unset variables.
// PORT, when set, is the fallback for both service ports.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("JWT_SECRET", &cfg.JWTSecret)

	str("PORT", &cfg.AccountPort)
	str("PORT", &cfg.CatalogPort)
	str("ACCOUNT_PORT", &cfg.AccountPort)
	str("CATALOG_PORT", &cfg.CatalogPort)

	str("GAMINGTECH_DATA_FILE", &cfg.DataFile)
	str("GAMINGTECH_ADMIN_EMAIL", &cfg.AdminEmail)
	str("GAMINGTECH_ADMIN_PASSWORD", &cfg.AdminPassword)
	boolean("GAMINGTECH_SEED_ADMIN", &cfg.SeedAdmin)
	boolean("GAMINGTECH_DISABLE_TLS", &cfg.DisableTLS)
	boolean("LOG_JSON", &cfg.LogJSON)

	if v, ok := lookup("GAMINGTECH_TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("GAMINGTECH_TOKEN_TTL: %w", err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("GAMINGTECH_TOKEN_TTL: must be positive, got %s", d))
		default:
			cfg.TokenTTL = d
		}
	}

	if v, ok := lookup("GAMINGTECH_BCRYPT_COST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("GAMINGTECH_BCRYPT_COST: %w", err))
		case n < 4 || n > 31:
			errs = append(errs, fmt.Errorf("GAMINGTECH_BCRYPT_COST: must be between 4 and 31, got %d", n))
		default:
			cfg.BcryptCost = n
		}
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			cfg.LogLevel = level
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// InsecureDefaults lists the settings still carrying a development fallback,
// so the binaries can warn about them at start-up.
func (c *Config) InsecureDefaults() []string {
	var out []string
	if c.JWTSecret == DefaultJWTSecret {
		out = append(out, "JWT_SECRET")
	}
	if c.SeedAdmin && c.AdminPassword == DefaultAdminPassword {
		out = append(out, "GAMINGTECH_ADMIN_PASSWORD")
	}
	return out
}

// Logging returns the logger configuration.
func (c *Config) Logging() *logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.JSON = c.LogJSON
	return cfg
}
