package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8000" || cfg.HTTP.RequestTimeout != 10*time.Second {
		t.Fatalf("http = %+v", cfg.HTTP)
	}
	if cfg.DB.DSN != "" || cfg.Redis.Addr != "" {
		t.Fatalf("expected in-process defaults, got dsn=%q redis=%q", cfg.DB.DSN, cfg.Redis.Addr)
	}
	if cfg.Pricing.TTL != 10*time.Minute || cfg.Session.TTL != 24*time.Hour {
		t.Fatalf("ttls = %v / %v", cfg.Pricing.TTL, cfg.Session.TTL)
	}
	r := cfg.Routing
	if r.PrimaryFloor != 0.25 || r.SecondaryFloor != 0.2 || r.SecondaryDispatchFloor != 0.4 || r.HighConfidence != 0.8 || r.ComplexQueryTokens != 5 {
		t.Fatalf("routing = %+v", r)
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WL_HTTP_ADDR", ":9999")
	t.Setenv("WL_PRICE_TTL_SECONDS", "30")
	t.Setenv("WL_HIGH_CONFIDENCE", "0.9")
	t.Setenv("WL_COMPLEX_QUERY_TOKENS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" || cfg.Pricing.TTL != 30*time.Second || cfg.Routing.HighConfidence != 0.9 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Routing.ComplexQueryTokens != 5 {
		t.Fatalf("bad int should keep default, got %d", cfg.Routing.ComplexQueryTokens)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
