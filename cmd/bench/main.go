// README: Smoke runner against a running API; checks routing, HTTP surface, DB and Redis, then tallies per group.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var focusOrder = []string{focusEnv, focusAPI, focusRouting, focusManual, focusPerf}

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	results := NewRunner(cfg).RunAll(ctx)
	tally := summarize(results)

	fmt.Println("\n== Summary ==")
	for _, focus := range focusOrder {
		c, ok := tally[focus]
		if !ok {
			continue
		}
		fmt.Printf("%-8s PASS=%d FAIL=%d SKIP=%d\n", focus, c.pass, c.fail, c.skip)
	}

	routing := tally[focusRouting]
	if routing.fail > 0 {
		fmt.Println("\nmisrouted:")
		for _, r := range results {
			if r.Focus == focusRouting && r.Status == "FAIL" {
				fmt.Printf("  %s - %s\n", r.Name, r.Note)
			}
		}
	}

	infraFail := 0
	for focus, c := range tally {
		if focus != focusRouting {
			infraFail += c.fail
		}
	}
	if infraFail > 0 || routing.fail > cfg.MaxMisroutes {
		os.Exit(1)
	}
}

type counts struct{ pass, fail, skip int }

func summarize(results []Result) map[string]counts {
	out := make(map[string]counts)
	for _, r := range results {
		c := out[r.Focus]
		switch r.Status {
		case "PASS":
			c.pass++
		case "FAIL":
			c.fail++
		case "SKIP":
			c.skip++
		}
		out[r.Focus] = c
	}
	return out
}

type Config struct {
	BaseURL       string
	DSN           string
	RedisAddr     string
	MigrationPath string
	Focus         string
	SkipPerf      bool
	MaxMisroutes  int
	Timeout       time.Duration
	Concurrency   int
	Duration      time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", env("WL_BENCH_BASE_URL", "http://localhost:8000"), "API base URL")
	flag.StringVar(&cfg.DSN, "dsn", env("WL_DB_DSN", ""), "Postgres DSN (empty skips DB checks)")
	flag.StringVar(&cfg.RedisAddr, "redis", env("WL_REDIS_ADDR", ""), "Redis address (empty skips Redis checks)")
	flag.StringVar(&cfg.MigrationPath, "migration", env("WL_BENCH_MIGRATION", "migrations/0001_holdings.sql"), "Migration SQL path")
	flag.StringVar(&cfg.Focus, "only", env("WL_BENCH_ONLY", ""), "Run one group: env, api, routing, manual or perf")
	flag.BoolVar(&cfg.SkipPerf, "skip-perf", envBool("WL_BENCH_SKIP_PERF", false), "Skip the chat throughput check")
	flag.IntVar(&cfg.MaxMisroutes, "max-misroutes", envInt("WL_BENCH_MAX_MISROUTES", 0), "Routing failures tolerated before a non-zero exit")
	flag.DurationVar(&cfg.Timeout, "timeout", envDuration("WL_BENCH_TIMEOUT", 60*time.Second), "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", envInt("WL_BENCH_CONCURRENCY", 10), "Parallel chat clients for the perf check")
	flag.DurationVar(&cfg.Duration, "duration", envDuration("WL_BENCH_DURATION", 5*time.Second), "Duration of the perf check")
	flag.Parse()
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n >= 0 {
		return n
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return def
}
