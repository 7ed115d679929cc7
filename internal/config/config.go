// Package config handles application configuration loading from environment
// variables, optionally preloaded from a .env file. It provides a centralized
// Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"blackshop/internal/api"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host   string
	Port   string
	Env    string // "development", "production", "testing"
	Locale string // fallback UI language: "en" or "fa"

	// Remote services
	APIProtocol  string // "http" or "https"
	CatalogHost  string
	IdentityHost string
	OrderHost    string

	// Valkey (Redis-compatible) for wizard drafts
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Product wizard
	WizardDraftTTL time.Duration
	WizardPublish  bool // submit also creates the product in the catalog

	// S3-compatible object storage for category images (optional)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment. Variables already set win. A missing file
// is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		slog.Info("environment loaded from file", "file", f)
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Malformed values are an error; missing
// service hosts are not (see MissingHosts).
func Load() (*Config, error) {
	cfg := &Config{
		Host:   envOrDefault("APP_HOST", "0.0.0.0"),
		Port:   envOrDefault("APP_PORT", "3000"),
		Env:    envOrDefault("APP_ENV", "development"),
		Locale: envOrDefault("APP_LOCALE", "en"),

		APIProtocol:  envOrDefault("API_PROTOCOL", "http"),
		CatalogHost:  os.Getenv("CATALOG_API_HOST"),
		IdentityHost: os.Getenv("IDENTITY_API_HOST"),
		OrderHost:    os.Getenv("ORDER_API_HOST"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	if cfg.APIProtocol != "http" && cfg.APIProtocol != "https" {
		return nil, fmt.Errorf("API_PROTOCOL must be http or https, got %q", cfg.APIProtocol)
	}
	if cfg.Locale != "en" && cfg.Locale != "fa" {
		return nil, fmt.Errorf("APP_LOCALE must be en or fa, got %q", cfg.Locale)
	}

	ttl, err := time.ParseDuration(envOrDefault("WIZARD_DRAFT_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("WIZARD_DRAFT_TTL must be a positive duration: %q", os.Getenv("WIZARD_DRAFT_TTL"))
	}
	cfg.WizardDraftTTL = ttl

	if v := os.Getenv("WIZARD_PUBLISH"); v != "" {
		cfg.WizardPublish, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("WIZARD_PUBLISH must be a boolean: %w", err)
		}
	}

	return cfg, nil
}

// API returns the remote service client settings.
func (c *Config) API() api.Config {
	return api.Config{
		Protocol:     c.APIProtocol,
		CatalogHost:  c.CatalogHost,
		IdentityHost: c.IdentityHost,
		OrderHost:    c.OrderHost,
	}
}

// StorageEnabled reports whether every S3 setting needed for uploads is set.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != "" &&
		c.S3Bucket != "" && c.S3PublicURL != ""
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction returns true in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SecureCookies reports whether the session and CSRF cookies carry the
// Secure flag. Only production is served over TLS.
func (c *Config) SecureCookies() bool {
	return c.IsProduction()
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
