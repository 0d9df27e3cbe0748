package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"wealthlens/internal/intent"
	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/session"
	"wealthlens/internal/responders"
	"wealthlens/internal/routing"
)

func newTestService(t *testing.T) (*Service, *session.Service) {
	t.Helper()
	reg, err := responders.NewRegistry(portfolio.NewService(portfolio.NewStaticSource(), nil))
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	engine := routing.NewEngine(intent.NewClassifier(intent.MustDefaultLexicon()), reg, routing.DefaultConfig())
	sessions := session.NewService(session.NewMemoryStore(), time.Hour)
	return NewService(engine, sessions), sessions
}

func TestChatSpecialCases(t *testing.T) {
	svc, _ := newTestService(t)
	tests := []struct {
		message string
		want    intent.Intent
		source  string
	}{
		{"who am i", intent.PersonalInfo, "rag_agent"},
		{"what is the current price of my stocks", intent.PortfolioAnalysis, "portfolio_analyzer"},
	}
	for _, tt := range tests {
		resp := svc.Chat(context.Background(), Request{Message: tt.message})
		if resp.Intent != tt.want || resp.Confidence != 1.0 {
			t.Fatalf("%q: intent=%s conf=%v", tt.message, resp.Intent, resp.Confidence)
		}
		if len(resp.Sources) != 1 || resp.Sources[0] != tt.source {
			t.Fatalf("%q: sources = %v", tt.message, resp.Sources)
		}
		if !resp.Success || resp.Text == "" {
			t.Fatalf("%q: response = %+v", tt.message, resp)
		}
	}
}

func TestChatRecordsSession(t *testing.T) {
	svc, sessions := newTestService(t)
	ctx := context.Background()

	resp := svc.Chat(ctx, Request{Message: "show me buy recommendations", Language: "genz"})
	if resp.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if resp.Intent != intent.InvestmentAdvice {
		t.Fatalf("intent = %s", resp.Intent)
	}
	got, err := sessions.Get(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got.LastQuery != "show me buy recommendations" || got.Language != "genz" || got.LastResponse != resp.Text {
		t.Fatalf("session = %+v", got)
	}

	again := svc.Chat(ctx, Request{Message: "portfolio", SessionID: resp.SessionID})
	if again.SessionID != resp.SessionID {
		t.Fatalf("session id changed: %s -> %s", resp.SessionID, again.SessionID)
	}
}

func TestChatEmptyMessageFallsBack(t *testing.T) {
	svc, _ := newTestService(t)
	resp := svc.Chat(context.Background(), Request{})
	if len(resp.Sources) != 1 || resp.Sources[0] != "rag_agent" {
		t.Fatalf("sources = %v", resp.Sources)
	}
	if !strings.Contains(resp.Text, "You can ask about:") {
		t.Fatalf("text = %q", resp.Text)
	}
}

func TestChatCompoundQuery(t *testing.T) {
	svc, _ := newTestService(t)
	resp := svc.Chat(context.Background(), Request{Message: "analyze my portfolio risk and suggest what to buy"})
	if len(resp.AgentResponses) < 2 {
		t.Fatalf("agent responses = %d", len(resp.AgentResponses))
	}
	if !strings.HasPrefix(resp.Text, "Multi-Agent Analysis Complete!") {
		t.Fatalf("missing banner: %q", resp.Text)
	}
	for _, o := range resp.AgentResponses {
		if !strings.Contains(resp.Text, "["+o.DisplayName+" - ") {
			t.Fatalf("missing header for %s", o.DisplayName)
		}
	}
}

func TestSourcesAndAnalysis(t *testing.T) {
	svc, _ := newTestService(t)
	src := svc.Sources("market sentiment")
	if src.PrimaryIntent != intent.SentimentAnalysis || src.PrimaryAgent != "Sentiment Analyzer" {
		t.Fatalf("sources = %+v", src)
	}
	if len(src.Responders) == 0 || src.Responders[0] != "sentiment_analyzer" {
		t.Fatalf("responders = %v", src.Responders)
	}
	if len(src.AllIntents) != len(intent.All()) || len(src.AgentMapping) != len(intent.All()) {
		t.Fatalf("sources maps incomplete: %+v", src)
	}

	a := svc.AnalyzeIntent("portfolio")
	if a.Analysis.Primary != intent.PortfolioAnalysis || len(a.AvailableIntents) != 8 {
		t.Fatalf("analysis = %+v", a)
	}
}

func TestAgents(t *testing.T) {
	svc, _ := newTestService(t)
	agents := svc.Agents()
	if len(agents) != 8 {
		t.Fatalf("agents = %d", len(agents))
	}
	fallbacks := 0
	for _, a := range agents {
		if a.Status != "active" || a.DisplayName == "" {
			t.Fatalf("agent = %+v", a)
		}
		if a.Fallback {
			fallbacks++
			if a.Name != "rag_agent" {
				t.Fatalf("fallback = %s", a.Name)
			}
		}
	}
	if fallbacks != 1 {
		t.Fatalf("fallbacks = %d", fallbacks)
	}
	if names := svc.AgentNames(); len(names) != 8 || names[0] != "portfolio_analyzer" {
		t.Fatalf("names = %v", names)
	}
}
