// README: Investment advisor; buy, sell, hold, allocation and opportunity notes.
package responders

import (
	"context"
	"fmt"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

const advisorSource = "Investment Advisor Agent"

type Recommendation struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Target     float64 `json:"target_price,omitempty"`
	Confidence string  `json:"confidence,omitempty"`
	Urgency    string  `json:"urgency,omitempty"`
	Expected   string  `json:"expected_return,omitempty"`
	Timeframe  string  `json:"timeframe,omitempty"`
}

var (
	buyList = []Recommendation{
		{Symbol: "AAPL", Name: "Apple Inc", Reason: "Strong AI integration and ecosystem growth", Target: 200, Confidence: "High"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Reason: "Cloud computing leadership and AI innovation", Target: 350, Confidence: "High"},
		{Symbol: "TCS.NS", Name: "Tata Consultancy Services", Reason: "Digital transformation demand and global expansion", Target: 4200, Confidence: "Medium"},
		{Symbol: "SUZLON.NS", Name: "Suzlon Energy", Reason: "Renewable energy growth and government support", Target: 12, Confidence: "Medium"},
	}
	sellList = []Recommendation{
		{Symbol: "RELIANCE.NS", Name: "Reliance Industries", Reason: "Oil price volatility and regulatory concerns", Target: 2400, Urgency: "Medium"},
		{Symbol: "JPASSOCIAT.NS", Name: "Jaiprakash Associates", Reason: "High debt levels and sector challenges", Target: 5.5, Urgency: "High"},
	}
	holdList = []Recommendation{
		{Symbol: "HDFCBANK.NS", Name: "HDFC Bank", Reason: "Strong fundamentals and stable growth", Expected: "8-12%", Timeframe: "6-12 months"},
		{Symbol: "INFY.NS", Name: "Infosys", Reason: "Consistent performance and dividend yield", Expected: "10-15%", Timeframe: "6-12 months"},
		{Symbol: "GOOGL", Name: "Alphabet Inc", Reason: "AI leadership and advertising recovery", Expected: "15-20%", Timeframe: "12-18 months"},
	}
)

type InvestmentAdvisor struct {
	src Holdings
}

func NewInvestmentAdvisor(src Holdings) *InvestmentAdvisor {
	return &InvestmentAdvisor{src: src}
}

func (a *InvestmentAdvisor) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := a.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("investment advisor: %w", err)
	}
	text := strings.ToLower(q.Text)
	switch {
	case strings.Contains(text, "where") && strings.Contains(text, "invest"):
		return a.opportunities(q), nil
	case containsAny(text, "buy", "invest"):
		return a.buy(h, q), nil
	case strings.Contains(text, "sell"):
		return a.sell(h, q), nil
	case strings.Contains(text, "hold"):
		return a.hold(q), nil
	case containsAny(text, "recommendation", "advice"):
		return a.strategy(q), nil
	}
	return a.comprehensive(h, q), nil
}

func (a *InvestmentAdvisor) out(text, category string, payload any) routing.Output {
	return routing.Output{DisplayName: "Investment Advisor", Text: text, Category: category, Payload: payload}
}

// currencyOf reports the quote currency for symbol, INR when not held.
func currencyOf(h portfolio.Holdings, symbol string) string {
	if s, ok := h.Stock(symbol); ok && s.Currency != "" {
		return s.Currency
	}
	return portfolio.BaseCurrency
}

func (a *InvestmentAdvisor) buy(h portfolio.Holdings, q routing.Query) routing.Output {
	var b strings.Builder
	b.WriteString(pick(q, "Buy Recommendations:\n", "🛒 BUY Recommendations 🛒\n"))
	for _, r := range buyList {
		target := money(r.Target, currencyOf(h, r.Symbol))
		b.WriteString("\n")
		if genz(q) {
			mark := "🟡"
			if r.Confidence == "High" {
				mark = "🟢"
			}
			fmt.Fprintf(&b, "%s %s (%s)\n💰 Target: %s\n📈 Reason: %s\n", mark, r.Name, r.Symbol, target, r.Reason)
		} else {
			fmt.Fprintf(&b, "%s (%s)\nTarget Price: %s\nReason: %s\nConfidence: %s\n", r.Name, r.Symbol, target, r.Reason, r.Confidence)
		}
	}
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "buy_recommendations", buyList)
}

func (a *InvestmentAdvisor) sell(h portfolio.Holdings, q routing.Query) routing.Output {
	var b strings.Builder
	b.WriteString(pick(q, "Sell Recommendations:\n", "📉 SELL Recommendations 📉\n"))
	for _, r := range sellList {
		cur := currencyOf(h, r.Symbol)
		current := "n/a"
		if s, ok := h.Stock(r.Symbol); ok {
			current = money(s.CurrentPrice, cur)
		}
		suggested := money(r.Target, cur)
		b.WriteString("\n")
		if genz(q) {
			mark := "🟡"
			if r.Urgency == "High" {
				mark = "🔴"
			}
			fmt.Fprintf(&b, "%s %s (%s)\n💰 Current: %s → Suggested: %s\n📉 Reason: %s\n", mark, r.Name, r.Symbol, current, suggested, r.Reason)
		} else {
			fmt.Fprintf(&b, "%s (%s)\nCurrent Price: %s\nSuggested Price: %s\nReason: %s\nUrgency: %s\n", r.Name, r.Symbol, current, suggested, r.Reason, r.Urgency)
		}
	}
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "sell_recommendations", sellList)
}

func (a *InvestmentAdvisor) hold(q routing.Query) routing.Output {
	var b strings.Builder
	b.WriteString(pick(q, "Hold Recommendations:\n", "🤝 HOLD Recommendations 🤝\n"))
	for _, r := range holdList {
		b.WriteString("\n")
		if genz(q) {
			fmt.Fprintf(&b, "🟢 %s (%s)\n📈 Expected Return: %s\n⏰ Timeframe: %s\n💡 Reason: %s\n", r.Name, r.Symbol, r.Expected, r.Timeframe, r.Reason)
		} else {
			fmt.Fprintf(&b, "%s (%s)\nExpected Return: %s\nTimeframe: %s\nReason: %s\n", r.Name, r.Symbol, r.Expected, r.Timeframe, r.Reason)
		}
	}
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "hold_recommendations", holdList)
}

func (a *InvestmentAdvisor) opportunities(q routing.Query) routing.Output {
	type opportunity struct {
		Sector string   `json:"sector"`
		Ideas  []string `json:"opportunities"`
		Reason string   `json:"reason"`
		Risk   string   `json:"risk_level"`
	}
	opps := []opportunity{
		{"Technology", []string{"AI and Machine Learning companies", "Cloud computing providers", "Cybersecurity firms"}, "Digital transformation acceleration", "Medium"},
		{"Renewable Energy", []string{"Solar energy companies", "Wind power providers", "Energy storage solutions"}, "Government support and sustainability focus", "Medium-High"},
		{"Healthcare", []string{"Biotechnology companies", "Digital health platforms", "Pharmaceutical research"}, "Aging population and innovation", "High"},
	}
	var b strings.Builder
	b.WriteString(pick(q, "Investment Opportunities:\n", "💡 Investment Opportunities 💡\n"))
	for _, o := range opps {
		b.WriteString("\n")
		if genz(q) {
			mark := "🔴"
			switch o.Risk {
			case "Low":
				mark = "🟢"
			case "Medium":
				mark = "🟡"
			}
			fmt.Fprintf(&b, "%s %s Sector\n🎯 Opportunities: %s\n💡 Reason: %s\n⚠️ Risk: %s\n", mark, o.Sector, strings.Join(o.Ideas, ", "), o.Reason, o.Risk)
		} else {
			fmt.Fprintf(&b, "%s Sector:\nOpportunities: %s\nReason: %s\nRisk Level: %s\n", o.Sector, strings.Join(o.Ideas, ", "), o.Reason, o.Risk)
		}
	}
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "investment_opportunities", opps)
}

func (a *InvestmentAdvisor) strategy(q routing.Query) routing.Output {
	allocation := [][2]string{{"Large Cap", "40%"}, {"Mid Cap", "30%"}, {"Small Cap", "20%"}, {"International", "10%"}}
	sectors := [][2]string{{"Technology", "30%"}, {"Banking", "25%"}, {"Consumer", "20%"}, {"Energy", "15%"}, {"Others", "10%"}}
	rules := []string{
		"Maintain 6-month emergency fund",
		"Diversify across sectors and geographies",
		"Regular portfolio rebalancing",
		"Monitor market conditions",
	}
	pairs := func(kv [][2]string) []string {
		out := make([]string, len(kv))
		for i, p := range kv {
			out[i] = p[0] + ": " + p[1]
		}
		return out
	}

	var b strings.Builder
	b.WriteString(pick(q, "Investment Strategy:\n\n", "📊 Investment Strategy 📊\n\n"))
	b.WriteString(pick(q, "Portfolio Allocation:\n", "💰 Portfolio Allocation:\n"))
	bullets(&b, pairs(allocation))
	b.WriteString(pick(q, "\nSector Allocation:\n", "\n🏢 Sector Allocation:\n"))
	bullets(&b, pairs(sectors))
	b.WriteString(pick(q, "\nRisk Management:\n", "\n⚠️ Risk Management:\n"))
	bullets(&b, rules)
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "investment_advice", map[string]any{
		"portfolio_allocation": allocation,
		"sector_allocation":    sectors,
		"risk_management":      rules,
	})
}

func (a *InvestmentAdvisor) comprehensive(h portfolio.Holdings, q routing.Query) routing.Output {
	s := portfolio.Summarize(h)
	advice := "Consider reviewing your investment strategy and potentially rebalancing your portfolio."
	switch {
	case s.TotalPnLPct > 15:
		advice = "Your portfolio is performing excellently! Consider taking some profits and rebalancing."
	case s.TotalPnLPct > 5:
		advice = "Good performance! Focus on maintaining diversification and monitoring positions."
	}
	var b strings.Builder
	b.WriteString(pick(q, "Comprehensive Investment Advice:\n\n", "🎯 Comprehensive Investment Advice 🎯\n\n"))
	fmt.Fprintf(&b, "%sCurrent Performance: %s\n\n", pick(q, "", "📊 "), pct(s.TotalPnLPct))
	b.WriteString(pick(q, "Personalized Advice:\n", "💡 Personalized Advice:\n") + advice + "\n\n")
	b.WriteString(pick(q, "Action Items:\n", "🚀 Action Items:\n"))
	bullets(&b, []string{
		"Review portfolio allocation monthly",
		"Monitor sector performance",
		"Consider new opportunities in emerging sectors",
		"Maintain emergency fund",
	})
	source(&b, "💡", advisorSource)
	return a.out(b.String(), "investment_advice", map[string]any{"summary": s, "advice": advice})
}
