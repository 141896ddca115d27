package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "CART_STORAGE", "CART_KEY", "CATALOG_TIMEOUT_SECONDS", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if cfg.CartStorage != "file" || cfg.CartKey != DefaultCartKey {
		t.Fatalf("unexpected storage defaults: %q %q", cfg.CartStorage, cfg.CartKey)
	}
	if cfg.CatalogTimeout != 5*time.Second {
		t.Fatalf("unexpected catalog timeout %s", cfg.CatalogTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CART_STORAGE", "Redis")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "2")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := FromEnv()
	if cfg.CartStorage != "redis" {
		t.Fatalf("expected lower-cased storage, got %q", cfg.CartStorage)
	}
	if cfg.CatalogTimeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %s", cfg.CatalogTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected fallback shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}
