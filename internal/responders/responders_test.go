package responders

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

type brokenSource struct{}

func (brokenSource) Holdings(context.Context) (portfolio.Holdings, error) {
	return portfolio.Holdings{}, errors.New("store offline")
}

func holdings() Holdings {
	return portfolio.NewService(portfolio.NewStaticSource(), nil)
}

func normal(text string) routing.Query { return routing.Query{Text: text, Language: routing.Normal} }
func slang(text string) routing.Query  { return routing.Query{Text: text, Language: routing.GenZ} }

func TestResponderCategories(t *testing.T) {
	src := holdings()
	tests := []struct {
		name     string
		r        routing.Responder
		query    string
		category string
		contains string
	}{
		{"summary", NewPortfolioAnalyzer(src), "portfolio summary please", "portfolio_summary", "₹14,186,290"},
		{"penny", NewPortfolioAnalyzer(src), "my penny stocks", "penny_stocks_analysis", "Found 3 penny stocks"},
		{"sectors", NewPortfolioAnalyzer(src), "sector breakdown", "sector_analysis", "Banking: ₹3,472,000"},
		{"list stocks", NewPortfolioAnalyzer(src), "list stocks", "stocks_list", "Portfolio Stocks (13 stocks)"},
		{"list countries", NewPortfolioAnalyzer(src), "show countries", "countries_list", "Portfolio Countries (2 countries)"},
		{"performance", NewPortfolioAnalyzer(src), "how are my returns", "performance_analysis", "Overall Return: 8.00%"},
		{"risk", NewPortfolioAnalyzer(src), "risk please", "risk_analysis", "Diversification Score: 10/10"},
		{"default", NewPortfolioAnalyzer(src), "portfolio", "comprehensive_analysis", "13 stocks"},
		{"news impact", NewNewsAnalyzer(), "news impact", "news_impact_analysis", "Oil & Gas"},
		{"traffic", NewNewsAnalyzer(), "traffic in india", "traffic_impact_analysis", "Affected Region: India"},
		{"market news", NewNewsAnalyzer(), "latest market news", "market_news", "Tech stocks surge"},
		{"sector news", NewNewsAnalyzer(), "banking sector news", "sector_news", "Banking Sector News"},
		{"general news", NewNewsAnalyzer(), "headlines", "news_analysis", "Market Sentiment: Bullish"},
		{"buy", NewInvestmentAdvisor(src), "what should i buy", "buy_recommendations", "Target Price: $200.00"},
		{"sell", NewInvestmentAdvisor(src), "what to sell", "sell_recommendations", "Current Price: ₹2,650"},
		{"hold", NewInvestmentAdvisor(src), "should i hold", "hold_recommendations", "HDFC Bank"},
		{"where", NewInvestmentAdvisor(src), "where should i invest", "investment_opportunities", "Renewable Energy Sector"},
		{"strategy", NewInvestmentAdvisor(src), "give me advice", "investment_advice", "Large Cap: 40%"},
		{"comprehensive", NewInvestmentAdvisor(src), "thoughts?", "investment_advice", "Good performance!"},
		{"risk analyzer", NewRiskAnalyzer(src), "risk", "risk_analysis", "Risk Level: Medium"},
		{"research", NewMarketResearch(src), "research", "market_research", "Sector Analysis:"},
		{"technical", NewTechnicalAnalyzer(src), "rsi", "technical_analysis", "RELIANCE.NS"},
		{"sentiment", NewSentimentAnalyzer(src), "mood", "sentiment_analysis", "TSLA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.r.Respond(context.Background(), normal(tt.query))
			if err != nil {
				t.Fatalf("Respond: %v", err)
			}
			if out.Category != tt.category {
				t.Fatalf("category = %s, want %s", out.Category, tt.category)
			}
			if !strings.Contains(out.Text, tt.contains) {
				t.Fatalf("text missing %q:\n%s", tt.contains, out.Text)
			}
			alt, err := tt.r.Respond(context.Background(), slang(tt.query))
			if err != nil || alt.Text == "" || alt.Text == out.Text {
				t.Fatalf("genz variant err=%v same=%v", err, alt.Text == out.Text)
			}
		})
	}
}

func TestRespondersPropagateSourceErrors(t *testing.T) {
	src := brokenSource{}
	for _, r := range []routing.Responder{
		NewPortfolioAnalyzer(src),
		NewInvestmentAdvisor(src),
		NewRiskAnalyzer(src),
		NewMarketResearch(src),
		NewTechnicalAnalyzer(src),
		NewSentimentAnalyzer(src),
	} {
		if _, err := r.Respond(context.Background(), normal("anything")); err == nil {
			t.Fatalf("%T: expected error", r)
		}
	}
}

func TestRAGAgent(t *testing.T) {
	a := NewRAGAgent(DefaultProfile(), DefaultKnowledge())
	tests := []struct {
		query    string
		contains string
		method   string
	}{
		{"how can I contact ganesh", "8459684546", "keyword_search"},
		{"what are his interests", "emerging technologies", "keyword_search"},
		{"what is ganesh's investment strategy", "long-term value investing", "keyword_search"},
		{"who am i", "About Ganesh Divekar", "profile"},
		{"who is ganesh", "Works at: Bajaj Technology", "profile"},
		{"hello", "I'm here to help with questions about Ganesh Divekar!", "profile"},
		{"", "You can ask about:", "profile"},
	}
	for _, tt := range tests {
		out, err := a.Respond(context.Background(), normal(tt.query))
		if err != nil {
			t.Fatalf("%q: %v", tt.query, err)
		}
		if !strings.Contains(out.Text, tt.contains) {
			t.Fatalf("%q: text missing %q:\n%s", tt.query, tt.contains, out.Text)
		}
		if m := out.Payload.(map[string]any)["method"]; m != tt.method {
			t.Fatalf("%q: method = %v, want %s", tt.query, m, tt.method)
		}
		if out.Category != "rag_response" {
			t.Fatalf("category = %s", out.Category)
		}
	}
}

func TestDerivedMetricsAreStable(t *testing.T) {
	h, _ := holdings().Holdings(context.Background())

	if a, b := Technicals(h), Technicals(h); !reflect.DeepEqual(a, b) {
		t.Fatal("technicals differ between calls")
	}
	if a, b := Sentiments(h), Sentiments(h); !reflect.DeepEqual(a, b) {
		t.Fatal("sentiments differ between calls")
	}
	if a, b := Research(h), Research(h); !reflect.DeepEqual(a, b) {
		t.Fatal("research differs between calls")
	}

	tech := Technicals(h)
	if tech.Buy+tech.Sell+tech.Hold != len(h.Stocks) {
		t.Fatalf("signal counts = %+v", tech)
	}
	for i, ind := range tech.Stocks {
		price := h.Stocks[i].CurrentPrice
		if ind.RSI < 20 || ind.RSI >= 80 {
			t.Fatalf("%s rsi = %v", ind.Symbol, ind.RSI)
		}
		if ind.Support >= price || ind.Resistance <= price {
			t.Fatalf("%s bands = %v / %v around %v", ind.Symbol, ind.Support, ind.Resistance, price)
		}
	}
	for _, s := range Sentiments(h).Stocks {
		if s.Score < 0 || s.Score > 100 {
			t.Fatalf("%s score = %d", s.Symbol, s.Score)
		}
	}
}

func TestAssess(t *testing.T) {
	h, _ := holdings().Holdings(context.Background())
	r := Assess(h)
	if r.Level != "Medium" {
		t.Fatalf("level = %s (score %v)", r.Level, r.Score)
	}
	if r.Score < 0.35 || r.Score > 0.38 {
		t.Fatalf("score = %v", r.Score)
	}
	if r.Volatility < minVolatility || r.Volatility > maxVolatility {
		t.Fatalf("volatility = %v", r.Volatility)
	}
	if len(r.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if v := Volatility(portfolio.Holdings{}); v != minVolatility {
		t.Fatalf("empty volatility = %v", v)
	}
}

func TestResearchMapsHeldSectors(t *testing.T) {
	h, _ := holdings().Holdings(context.Background())
	r := Research(h)
	if len(r.Sectors) != 8 {
		t.Fatalf("sectors = %d", len(r.Sectors))
	}
	for _, s := range r.Sectors {
		if s.Sector == "IT" && s.Trend != "Bullish" {
			t.Fatalf("IT should use the technology profile, got %+v", s)
		}
		if s.Outlook == "" || len(s.Recommendations) == 0 {
			t.Fatalf("incomplete outlook %+v", s)
		}
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(holdings())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []string{
		"portfolio_analyzer", "news_analyzer", "investment_advisor", "rag_agent",
		"risk_analyzer", "market_research", "technical_analyzer", "sentiment_analyzer",
	}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v", got)
	}
	if reg.NameOf(reg.Fallback()) != "rag_agent" {
		t.Fatalf("fallback = %s", reg.NameOf(reg.Fallback()))
	}
}
