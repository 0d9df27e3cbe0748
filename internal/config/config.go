// README: Config loader with env defaults for HTTP, DB, Redis, caching TTLs, and routing thresholds.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RoutingConfig struct {
	PrimaryFloor           float64
	SecondaryFloor         float64
	SecondaryDispatchFloor float64
	HighConfidence         float64
	ComplexQueryTokens     int
}

type Config struct {
	HTTP struct {
		Addr           string
		RequestTimeout time.Duration
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Pricing struct {
		TTL time.Duration
	}
	Session struct {
		TTL time.Duration
	}
	Routing RoutingConfig
}

// Load reads an optional .env file, then the environment. An empty DSN or
// Redis address selects the in-process alternative.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WL_HTTP_ADDR", ":8000")
	cfg.HTTP.RequestTimeout = envOrDefaultSeconds("WL_REQUEST_TIMEOUT_SECONDS", 10)
	cfg.DB.DSN = envOrDefault("WL_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("WL_REDIS_ADDR", "")
	cfg.Pricing.TTL = envOrDefaultSeconds("WL_PRICE_TTL_SECONDS", 600)
	cfg.Session.TTL = envOrDefaultSeconds("WL_SESSION_TTL_SECONDS", 86400)
	cfg.Routing.PrimaryFloor = envOrDefaultFloat("WL_PRIMARY_FLOOR", 0.25)
	cfg.Routing.SecondaryFloor = envOrDefaultFloat("WL_SECONDARY_FLOOR", 0.2)
	cfg.Routing.SecondaryDispatchFloor = envOrDefaultFloat("WL_SECONDARY_DISPATCH_FLOOR", 0.4)
	cfg.Routing.HighConfidence = envOrDefaultFloat("WL_HIGH_CONFIDENCE", 0.8)
	cfg.Routing.ComplexQueryTokens = envOrDefaultInt("WL_COMPLEX_QUERY_TOKENS", 5)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultSeconds(key string, def int) time.Duration {
	return time.Duration(envOrDefaultInt(key, def)) * time.Second
}
