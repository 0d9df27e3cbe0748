// README: HTTP API tests over the in-process stack (static holdings, memory caches).
package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	wlhttp "wealthlens/internal/http"
	"wealthlens/internal/intent"
	"wealthlens/internal/modules/chat"
	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/pricing"
	"wealthlens/internal/modules/session"
	"wealthlens/internal/responders"
	"wealthlens/internal/routing"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	portSvc := portfolio.NewService(portfolio.NewStaticSource(), nil)
	priceSvc := pricing.NewService(pricing.NewMemoryCache(), portSvc, time.Minute)
	portSvc.SetLivePricer(priceSvc)

	reg, err := responders.NewRegistry(portSvc)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	engine := routing.NewEngine(intent.NewClassifier(intent.MustDefaultLexicon()), reg, routing.DefaultConfig())
	sessions := session.NewService(session.NewMemoryStore(), time.Hour)

	srv := wlhttp.NewServer(wlhttp.ServerDeps{
		Chat:           chat.NewService(engine, sessions),
		Portfolio:      portSvc,
		Pricing:        priceSvc,
		Sessions:       sessions,
		RequestTimeout: 5 * time.Second,
	})
	return srv.Routes()
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestChatEndpoint(t *testing.T) {
	r := buildTestRouter(t)
	w := doRequest(r, http.MethodPost, "/chat", map[string]any{"message": "who am i"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Response  string   `json:"response"`
		SessionID string   `json:"session_id"`
		Success   bool     `json:"success"`
		Sources   []string `json:"sources"`
		Intent    string   `json:"intent"`
	}
	decode(t, w, &resp)
	if !resp.Success || resp.Intent != "personal_info" || resp.SessionID == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if len(resp.Sources) != 1 || resp.Sources[0] != "rag_agent" {
		t.Fatalf("sources = %v", resp.Sources)
	}

	got := doRequest(r, http.MethodGet, "/sessions/"+resp.SessionID, nil)
	if got.Code != http.StatusOK || !strings.Contains(got.Body.String(), "who am i") {
		t.Fatalf("session lookup = %d %s", got.Code, got.Body.String())
	}
	if del := doRequest(r, http.MethodDelete, "/sessions/"+resp.SessionID, nil); del.Code != http.StatusOK {
		t.Fatalf("delete = %d", del.Code)
	}
	if again := doRequest(r, http.MethodDelete, "/sessions/"+resp.SessionID, nil); again.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", again.Code)
	}
}

func TestChatRejectsBadBody(t *testing.T) {
	r := buildTestRouter(t)
	for _, path := range []string{"/chat", "/intent-analysis", "/sources"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
	if w := doRequest(r, http.MethodPost, "/chat", nil); w.Code != http.StatusBadRequest {
		t.Errorf("empty body: expected 400, got %d", w.Code)
	}
}

func TestSourcesEndpoint(t *testing.T) {
	r := buildTestRouter(t)
	w := doRequest(r, http.MethodPost, "/sources", map[string]any{"message": "market sentiment"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		PrimaryIntent string   `json:"primary_intent"`
		PrimaryAgent  string   `json:"primary_agent"`
		Responders    []string `json:"responders"`
	}
	decode(t, w, &resp)
	if resp.PrimaryIntent != "sentiment_analysis" || resp.PrimaryAgent != "Sentiment Analyzer" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPortfolioEndpoints(t *testing.T) {
	r := buildTestRouter(t)
	for _, kind := range []string{"", "summary", "detailed", "sectors", "countries"} {
		w := doRequest(r, http.MethodGet, "/portfolio?analysis_type="+kind, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%q: expected 200, got %d", kind, w.Code)
		}
	}
	if w := doRequest(r, http.MethodGet, "/portfolio?analysis_type=weekly", nil); w.Code != http.StatusBadRequest {
		t.Errorf("weekly: expected 400, got %d", w.Code)
	}

	w := doRequest(r, http.MethodGet, "/portfolio/penny-stocks", nil)
	var penny struct {
		Count int `json:"count"`
	}
	decode(t, w, &penny)
	if penny.Count != 3 {
		t.Fatalf("penny count = %d, want 3", penny.Count)
	}

	w = doRequest(r, http.MethodGet, "/data/live-prices", nil)
	var live struct {
		Prices map[string]float64 `json:"prices"`
	}
	decode(t, w, &live)
	if live.Prices["INFY.NS"] != 1520 || len(live.Prices) != 13 {
		t.Fatalf("prices = %v", live.Prices)
	}
}

func TestInfoEndpoints(t *testing.T) {
	r := buildTestRouter(t)
	for _, path := range []string{"/", "/health", "/examples", "/agents/status"} {
		if w := doRequest(r, http.MethodGet, path, nil); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
	w := doRequest(r, http.MethodGet, "/agents/list", nil)
	var list struct {
		Agents []string `json:"agents"`
		Total  int      `json:"total_agents"`
	}
	decode(t, w, &list)
	if list.Total != 8 || list.Agents[0] != "portfolio_analyzer" {
		t.Fatalf("agents = %+v", list)
	}
	if w := doRequest(r, http.MethodGet, "/sessions/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", w.Code)
	}
}
