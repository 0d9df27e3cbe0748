package routing

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"wealthlens/internal/intent"
)

var names = map[intent.Intent]string{
	intent.PortfolioAnalysis: "portfolio_analyzer",
	intent.NewsAnalysis:      "news_analyzer",
	intent.InvestmentAdvice:  "investment_advisor",
	intent.PersonalInfo:      "rag_agent",
	intent.RiskAssessment:    "risk_analyzer",
	intent.MarketResearch:    "market_research",
	intent.TechnicalAnalysis: "technical_analyzer",
	intent.SentimentAnalysis: "sentiment_analyzer",
}

type stub struct {
	calls int
	err   error
	panic bool
	text  string
}

func (s *stub) Respond(_ context.Context, q Query) (Output, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	if s.err != nil {
		return Output{}, s.err
	}
	text := s.text
	if text == "" {
		text = "ok: " + q.Text
	}
	return Output{Text: text}, nil
}

func newTestEngine(t *testing.T, override map[intent.Intent]*stub) (*Engine, map[intent.Intent]*stub) {
	t.Helper()
	stubs := map[intent.Intent]*stub{}
	reg := NewRegistry(intent.PersonalInfo)
	for _, in := range intent.All() {
		s := override[in]
		if s == nil {
			s = &stub{}
		}
		stubs[in] = s
		if err := reg.Register(Entry{Intent: in, Name: names[in], Responder: s}); err != nil {
			t.Fatalf("register %s: %v", in, err)
		}
	}
	if err := reg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	c := intent.NewClassifier(intent.MustDefaultLexicon())
	return NewEngine(c, reg, DefaultConfig()), stubs
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry(intent.PersonalInfo)
	if err := reg.Register(Entry{Intent: "weather", Name: "x", Responder: &stub{}}); !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("unknown intent err = %v", err)
	}
	if err := reg.Register(Entry{Intent: intent.NewsAnalysis, Name: "news_analyzer", Responder: &stub{}}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(Entry{Intent: intent.NewsAnalysis, Name: "again", Responder: &stub{}}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate err = %v", err)
	}
	if err := reg.Validate(); !errors.Is(err, ErrMissingResponder) {
		t.Fatalf("validate err = %v", err)
	}
}

func TestRoutePolicy(t *testing.T) {
	cfg := DefaultConfig()
	scores := func(kv map[intent.Intent]float64) intent.ScoreVector {
		v := intent.ScoreVector{}
		for _, in := range intent.All() {
			v[in] = kv[in]
		}
		return v
	}

	tests := []struct {
		name string
		res  intent.Result
		want Decision
	}{
		{
			name: "complementary secondary",
			res: intent.Result{
				Primary: intent.PortfolioAnalysis, Confidence: 0.6, TokenCount: 3,
				Secondary: []intent.Intent{intent.RiskAssessment, intent.NewsAnalysis},
				Scores:    scores(map[intent.Intent]float64{intent.PortfolioAnalysis: 0.6, intent.RiskAssessment: 0.5, intent.NewsAnalysis: 0.5}),
			},
			want: Decision{Selected: []intent.Intent{intent.PortfolioAnalysis, intent.RiskAssessment}},
		},
		{
			name: "long query admits any strong secondary",
			res: intent.Result{
				Primary: intent.PortfolioAnalysis, Confidence: 0.6, TokenCount: 6,
				Secondary: []intent.Intent{intent.NewsAnalysis},
				Scores:    scores(map[intent.Intent]float64{intent.PortfolioAnalysis: 0.6, intent.NewsAnalysis: 0.5}),
			},
			want: Decision{Selected: []intent.Intent{intent.PortfolioAnalysis, intent.NewsAnalysis}},
		},
		{
			name: "weak secondary dropped",
			res: intent.Result{
				Primary: intent.NewsAnalysis, Confidence: 0.5, TokenCount: 2,
				Secondary: []intent.Intent{intent.SentimentAnalysis},
				Scores:    scores(map[intent.Intent]float64{intent.NewsAnalysis: 0.5, intent.SentimentAnalysis: 0.4}),
			},
			want: Decision{Selected: []intent.Intent{intent.NewsAnalysis}},
		},
		{
			name: "high confidence suppresses secondaries",
			res: intent.Result{
				Primary: intent.InvestmentAdvice, Confidence: 0.9, TokenCount: 8,
				Secondary: []intent.Intent{intent.MarketResearch},
				Scores:    scores(map[intent.Intent]float64{intent.InvestmentAdvice: 0.9, intent.MarketResearch: 0.7}),
			},
			want: Decision{Selected: []intent.Intent{intent.InvestmentAdvice}},
		},
		{
			name: "low confidence primary skipped but secondary kept",
			res: intent.Result{
				Primary: intent.PortfolioAnalysis, Confidence: 0.2, TokenCount: 7,
				Secondary: []intent.Intent{intent.RiskAssessment},
				Scores:    scores(map[intent.Intent]float64{intent.PortfolioAnalysis: 0.5, intent.RiskAssessment: 0.45}),
			},
			want: Decision{Selected: []intent.Intent{intent.RiskAssessment}},
		},
		{
			name: "nothing selected",
			res:  intent.Result{Primary: intent.PortfolioAnalysis, Scores: scores(nil)},
			want: Decision{Selected: []intent.Intent{intent.PersonalInfo}, Fallback: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.res, cfg, intent.PersonalInfo)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Route = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRouteIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	for _, q := range []string{"", "portfolio", "analyze my portfolio risk and suggest what to buy", "how are you"} {
		res, first := e.Route(q)
		for i := 0; i < 3; i++ {
			if again := Route(res, e.cfg, intent.PersonalInfo); !reflect.DeepEqual(first, again) {
				t.Fatalf("%q: route changed: %+v vs %+v", q, first, again)
			}
		}
	}
}

func TestProcessBuyRecommendations(t *testing.T) {
	e, stubs := newTestEngine(t, nil)
	resp := e.Process(context.Background(), Query{Text: "show me buy recommendations", Language: Normal})
	if resp.Primary != intent.InvestmentAdvice {
		t.Fatalf("primary = %s", resp.Primary)
	}
	if len(resp.RespondersUsed) == 0 || resp.RespondersUsed[0] != "investment_advisor" {
		t.Fatalf("responders = %v", resp.RespondersUsed)
	}
	if stubs[intent.InvestmentAdvice].calls != 1 {
		t.Fatalf("advisor calls = %d", stubs[intent.InvestmentAdvice].calls)
	}
}

func TestProcessEmptyQueryUsesFallback(t *testing.T) {
	e, stubs := newTestEngine(t, nil)
	resp := e.Process(context.Background(), Query{Text: "", Language: Normal})
	if !reflect.DeepEqual(resp.RespondersUsed, []string{"rag_agent"}) {
		t.Fatalf("responders = %v, want [rag_agent]", resp.RespondersUsed)
	}
	if !resp.Decision.Fallback {
		t.Fatal("expected fallback decision")
	}
	if resp.Confidence != 0 {
		t.Fatalf("confidence = %v", resp.Confidence)
	}
	if resp.Text != "ok: " {
		t.Fatalf("text = %q", resp.Text)
	}
	if stubs[intent.PersonalInfo].calls != 1 {
		t.Fatalf("fallback calls = %d", stubs[intent.PersonalInfo].calls)
	}
}

func TestProcessCompoundQueryAttributesSources(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	resp := e.Process(context.Background(), Query{Text: "analyze my portfolio risk and suggest what to buy", Language: Normal})
	if len(resp.RespondersUsed) < 2 {
		t.Fatalf("responders = %v, want more than one", resp.RespondersUsed)
	}
	if !strings.HasPrefix(resp.Text, "Multi-Agent Analysis Complete!\n\n") {
		t.Fatalf("missing banner: %q", resp.Text)
	}
	headers := 0
	for _, line := range strings.Split(resp.Text, "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			headers++
		}
	}
	if headers != len(resp.Outputs) || headers < 2 {
		t.Fatalf("headers = %d, outputs = %d", headers, len(resp.Outputs))
	}
}

func TestDispatchIsolatesFailures(t *testing.T) {
	reg := NewRegistry(intent.PersonalInfo)
	failing := &stub{err: errors.New("db down")}
	panicking := &stub{panic: true}
	healthy := &stub{text: "risk ok"}
	_ = reg.Register(Entry{Intent: intent.PortfolioAnalysis, Name: "portfolio_analyzer", Responder: failing})
	_ = reg.Register(Entry{Intent: intent.InvestmentAdvice, Name: "investment_advisor", Responder: panicking})
	_ = reg.Register(Entry{Intent: intent.RiskAssessment, Name: "risk_analyzer", Responder: healthy})

	dec := Decision{Selected: []intent.Intent{intent.PortfolioAnalysis, intent.InvestmentAdvice, intent.RiskAssessment}}
	out := NewDispatcher(reg).Dispatch(context.Background(), dec, Query{Text: "q"})

	if len(out.Outputs) != 3 {
		t.Fatalf("outputs = %d, want 3", len(out.Outputs))
	}
	for i, in := range []intent.Intent{intent.PortfolioAnalysis, intent.InvestmentAdvice} {
		o := out.Outputs[i]
		if o.Category != CategoryError || o.Text != ErrorText || o.Intent != in || o.DisplayName != in.Title() {
			t.Fatalf("output %d = %+v", i, o)
		}
	}
	if out.Outputs[2].Text != "risk ok" || out.Outputs[2].Category != string(intent.RiskAssessment) {
		t.Fatalf("healthy output = %+v", out.Outputs[2])
	}
	if healthy.calls != 1 {
		t.Fatalf("healthy calls = %d", healthy.calls)
	}
	want := []string{"portfolio_analyzer", "investment_advisor", "risk_analyzer"}
	if !reflect.DeepEqual(out.Used, want) {
		t.Fatalf("used = %v", out.Used)
	}
}

func TestFallbackFailureYieldsApology(t *testing.T) {
	e, _ := newTestEngine(t, map[intent.Intent]*stub{intent.PersonalInfo: {err: errors.New("no kb")}})
	resp := e.Process(context.Background(), Query{Text: "hello", Language: GenZ})
	if resp.Text != Apology {
		t.Fatalf("text = %q", resp.Text)
	}
	if len(resp.Outputs) != 0 {
		t.Fatalf("outputs = %v", resp.Outputs)
	}
}

func TestMerge(t *testing.T) {
	if got := Merge(nil, Normal); got != Apology {
		t.Fatalf("empty merge = %q", got)
	}
	one := []Output{{DisplayName: "RAG Agent", Text: "hi", Category: "rag_response"}}
	if got := Merge(one, GenZ); got != "hi" {
		t.Fatalf("single merge = %q", got)
	}

	two := []Output{
		{DisplayName: "Portfolio Analyzer", Text: "A", Category: "portfolio_summary"},
		{DisplayName: "Risk Analyzer", Text: "B", Category: "risk_analysis"},
	}
	wantNormal := "Multi-Agent Analysis Complete!\n\n" +
		"[Portfolio Analyzer - Portfolio Summary]\nA\n" +
		strings.Repeat("-", 50) + "\n" +
		"[Risk Analyzer - Risk Analysis]\nB\n"
	if got := Merge(two, Normal); got != wantNormal {
		t.Fatalf("normal merge:\n%q\nwant\n%q", got, wantNormal)
	}
	wantGenZ := "🤖 Multi-Agent Analysis Complete! 🤖\n\n" +
		"📊 Portfolio Analyzer (Portfolio Summary):\nA\n" +
		strings.Repeat("─", 50) + "\n" +
		"⚠️ Risk Analyzer (Risk Analysis):\nB\n"
	if got := Merge(two, GenZ); got != wantGenZ {
		t.Fatalf("genz merge:\n%q\nwant\n%q", got, wantGenZ)
	}
}

func TestParseLanguage(t *testing.T) {
	if ParseLanguage(" GenZ ") != GenZ || ParseLanguage("") != Normal || ParseLanguage("pirate") != Normal {
		t.Fatal("ParseLanguage mapping")
	}
}
