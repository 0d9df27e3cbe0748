// README: Smoke cases for the chat API; includes HTTP, DB, Redis, and throughput checks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Focus   string
	Status  string
	Latency time.Duration
	Note    string
}

const (
	focusEnv     = "env"
	focusAPI     = "api"
	focusRouting = "routing"
	focusManual  = "manual"
	focusPerf    = "perf"
)

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		if r.cfg.Focus != "" && !strings.EqualFold(tc.Focus, r.cfg.Focus) {
			continue
		}
		if r.cfg.SkipPerf && tc.Focus == focusPerf {
			continue
		}
		res := tc.Run(ctx, r)
		res.Name, res.Focus = tc.Name, tc.Focus
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: focusEnv,
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: focusEnv,
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: focusEnv,
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		httpCaseMethod("API: health", http.MethodGet, base+"/health", nil, 200),
		httpCaseMethod("API: examples", http.MethodGet, base+"/examples", nil, 200),
		httpCaseMethod("API: agents list", http.MethodGet, base+"/agents/list", nil, 200),
		// Chat routing
		chatCase("Chat: identity special case", base, "who am i", "personal_info", "rag_agent"),
		chatCase("Chat: current price special case", base, "what is the current price of my stocks", "portfolio_analysis", "portfolio_analyzer"),
		chatCase("Chat: buy recommendations", base, "show me buy recommendations", "investment_advice", "investment_advisor"),
		chatCase("Chat: sentiment", base, "market sentiment", "sentiment_analysis", "sentiment_analyzer"),
		chatCase("Chat: empty message uses fallback", base, "", "", "rag_agent"),
		httpCase("Chat: bad body -> 400", base+"/chat", "not an object", 400),
		httpCase("Sources: compound query", base+"/sources", map[string]any{
			"message": "analyze my portfolio risk and give me investment advice",
		}, 200),
		// Portfolio
		httpCaseMethod("Portfolio: summary", http.MethodGet, base+"/portfolio?analysis_type=summary", nil, 200),
		httpCaseMethod("Portfolio: bad analysis type -> 400", http.MethodGet, base+"/portfolio?analysis_type=weekly", nil, 400),
		httpCaseMethod("Portfolio: penny stocks", http.MethodGet, base+"/portfolio/penny-stocks", nil, 200),
		httpCaseMethod("Data: live prices", http.MethodGet, base+"/data/live-prices", nil, 200),
		// Sessions
		httpCaseMethod("Session: unknown -> 404", http.MethodGet, base+"/sessions/does-not-exist", nil, 404),
		manualCase("Session: expiry", "needs WL_SESSION_TTL_SECONDS lowered and a wait"),
		// Performance
		{
			Name:  "Perf: chat throughput",
			Focus: focusPerf,
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/chat", map[string]any{
					"message": "show me my portfolio summary",
				})
			},
		},
	}
}

// chatCase posts message to /chat and checks the routed intent and responder.
// An empty wantIntent only checks the responder.
func chatCase(name, base, message, wantIntent, wantResponder string) TestCase {
	return TestCase{
		Name:  name,
		Focus: focusRouting,
		Run: func(ctx context.Context, r *Runner) Result {
			b, _ := json.Marshal(map[string]any{"message": message})
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, base+"/chat", strings.NewReader(string(b)))
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			defer resp.Body.Close()
			latency := time.Since(start)
			if resp.StatusCode != http.StatusOK {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			var body struct {
				Intent  string   `json:"intent"`
				Sources []string `json:"sources"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
			}
			if wantIntent != "" && body.Intent != wantIntent {
				return Result{Status: "FAIL", Latency: latency, Note: "intent=" + body.Intent}
			}
			if len(body.Sources) == 0 || body.Sources[0] != wantResponder {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("sources=%v", body.Sources)}
			}
			return Result{Status: "PASS", Latency: latency, Note: "intent=" + body.Intent}
		},
	}
}

func httpCase(name, url string, body any, okStatuses ...int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses...)
}

func httpCaseMethod(name, method, url string, body any, okStatuses ...int) TestCase {
	return TestCase{
		Name:  name,
		Focus: focusAPI,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, _ := http.NewRequestWithContext(ctx, method, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)
			if slices.Contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: focusManual,
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: "SKIP", Note: note}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}
