// README: News analyzer; canned headlines and impact notes keyed off the query.
package responders

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wealthlens/internal/routing"
)

const newsSource = "News Analyzer Agent"

type headline struct {
	Text    string   `json:"headline"`
	Impact  string   `json:"impact"`
	Sectors []string `json:"sectors"`
	Stocks  []string `json:"stocks"`
}

type affected struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Level  string `json:"level"`
	Note   string `json:"impact"`
}

var (
	marketNews = []headline{
		{"Tech stocks surge on AI breakthrough", "positive", []string{"Technology"}, []string{"AAPL", "MSFT", "GOOGL", "TCS.NS", "INFY.NS"}},
		{"Banking sector stable despite rate changes", "neutral", []string{"Banking"}, []string{"HDFCBANK.NS", "ICICIBANK.NS", "YESBANK.NS"}},
		{"Oil prices volatile due to geopolitical tensions", "negative", []string{"Oil & Gas"}, []string{"RELIANCE.NS"}},
	}

	// sectorNews is searched in order; the first sector named in the query wins.
	sectorNews = []struct {
		Sector string
		Items  []string
	}{
		{"technology", []string{"AI breakthrough drives tech stock rally", "Cloud computing adoption accelerates", "Cybersecurity concerns rise"}},
		{"banking", []string{"Interest rate changes impact banking sector", "Digital banking adoption increases", "Regulatory changes affect compliance"}},
		{"oil & gas", []string{"Geopolitical tensions affect oil prices", "Renewable energy transition accelerates", "Supply chain disruptions impact operations"}},
	}

	trafficImpact = map[string][]affected{
		"India": {
			{"RELIANCE.NS", "Reliance Industries", "High", "Logistics affected"},
			{"TCS.NS", "TCS", "Medium", "Delivery delays"},
			{"INFY.NS", "Infosys", "Medium", "Project timelines"},
			{"HDFCBANK.NS", "HDFC Bank", "Low", "Digital banking continues"},
		},
		"USA": {
			{"AMZN", "Amazon", "High", "Delivery network affected"},
			{"TSLA", "Tesla", "Medium", "Supply chain delays"},
			{"AAPL", "Apple", "Medium", "Product delivery"},
			{"MSFT", "Microsoft", "Low", "Cloud services stable"},
		},
	}
)

type NewsAnalyzer struct{}

func NewNewsAnalyzer() *NewsAnalyzer { return &NewsAnalyzer{} }

func (n *NewsAnalyzer) Respond(_ context.Context, q routing.Query) (routing.Output, error) {
	text := strings.ToLower(q.Text)
	switch {
	case strings.Contains(text, "news") && strings.Contains(text, "impact"):
		return n.impact(q), nil
	case strings.Contains(text, "traffic") && containsAny(text, "india", "usa"):
		region := "USA"
		if strings.Contains(text, "india") {
			region = "India"
		}
		return n.traffic(q, region), nil
	case strings.Contains(text, "market") && strings.Contains(text, "news"):
		return n.market(q), nil
	case strings.Contains(text, "sector") && strings.Contains(text, "news"):
		return n.sector(q, text), nil
	}
	return n.general(q), nil
}

func (n *NewsAnalyzer) out(text, category string, payload any) routing.Output {
	return routing.Output{DisplayName: "News Analyzer", Text: text, Category: category, Payload: payload}
}

func impactMark(q routing.Query, impact string) string {
	if !genz(q) {
		return "•"
	}
	switch impact {
	case "positive", "Low":
		return "🟢"
	case "negative", "High":
		return "🔴"
	}
	return "🟡"
}

func (n *NewsAnalyzer) impact(q routing.Query) routing.Output {
	positive := []string{"Technology", "Banking"}
	negative := []string{"Oil & Gas"}
	neutral := []string{"Consumer Discretionary", "Automotive"}
	events := []string{
		"Tech stocks rally on AI breakthrough news",
		"Banking sector stable despite rate changes",
		"Oil prices volatile due to geopolitical tensions",
	}

	var b strings.Builder
	b.WriteString(pick(q, "News Impact Analysis:\n\n", "📰 News Impact Analysis 📰\n\n"))
	fmt.Fprintf(&b, "%sPositive Impact Sectors:\n%s\n\n", pick(q, "", "🟢 "), strings.Join(positive, ", "))
	fmt.Fprintf(&b, "%sNegative Impact Sectors:\n%s\n\n", pick(q, "", "🔴 "), strings.Join(negative, ", "))
	fmt.Fprintf(&b, "%sNeutral Sectors:\n%s\n\n", pick(q, "", "🟡 "), strings.Join(neutral, ", "))
	b.WriteString(pick(q, "Key Events:\n", "📊 Key Events:\n"))
	bullets(&b, events)
	source(&b, "📰", newsSource)
	return n.out(b.String(), "news_impact_analysis", map[string]any{
		"positive_impact": positive,
		"negative_impact": negative,
		"neutral_impact":  neutral,
		"key_events":      events,
	})
}

func (n *NewsAnalyzer) traffic(q routing.Query, region string) routing.Output {
	stocks := trafficImpact[region]
	var b strings.Builder
	b.WriteString(pick(q, "Traffic Impact Analysis:\n\n", "🚦 Traffic Impact Analysis 🚦\n\n"))
	fmt.Fprintf(&b, "%sAffected Region: %s\n\n", pick(q, "", "📍 "), region+pick(q, "", " "+flag(region)))
	b.WriteString(pick(q, "Stocks Affected:\n", "📊 Stocks Affected:\n"))
	for _, s := range stocks {
		fmt.Fprintf(&b, "%s %s (%s): %s - %s\n", impactMark(q, s.Level), s.Name, s.Symbol, s.Level, s.Note)
	}
	source(&b, "📰", newsSource)
	return n.out(b.String(), "traffic_impact_analysis", map[string]any{"region": region, "affected_stocks": stocks})
}

func (n *NewsAnalyzer) market(q routing.Query) routing.Output {
	var b strings.Builder
	b.WriteString(pick(q, "Latest Market News:\n\n", "📰 Latest Market News 📰\n\n"))
	for _, h := range marketNews {
		fmt.Fprintf(&b, "%s %s\n", impactMark(q, h.Impact), h.Text)
	}
	source(&b, "📰", newsSource)
	return n.out(b.String(), "market_news", marketNews)
}

func (n *NewsAnalyzer) sector(q routing.Query, text string) routing.Output {
	chosen := sectorNews[0]
	for _, s := range sectorNews {
		if strings.Contains(text, s.Sector) {
			chosen = s
			break
		}
	}
	title := cases.Title(language.English).String(chosen.Sector)
	var b strings.Builder
	b.WriteString(pick(q, title+" Sector News:\n\n", "📰 "+title+" Sector News 📰\n\n"))
	for _, item := range chosen.Items {
		b.WriteString(pick(q, "• ", "📊 ") + item + "\n")
	}
	source(&b, "📰", newsSource)
	return n.out(b.String(), "sector_news", map[string]any{"sector": chosen.Sector, "news": chosen.Items})
}

func (n *NewsAnalyzer) general(q routing.Query) routing.Output {
	drivers := []string{"AI and technology innovation", "Strong corporate earnings", "Economic recovery signals"}
	risks := []string{"Geopolitical tensions", "Inflation concerns", "Supply chain disruptions"}
	recs := []string{"Maintain technology exposure", "Diversify across sectors", "Monitor geopolitical developments"}

	var b strings.Builder
	b.WriteString(pick(q, "General Market Analysis:\n\n", "📊 General Market Analysis 📊\n\n"))
	b.WriteString(pick(q, "Market Sentiment: Bullish\n\n", "🎯 Market Sentiment: Bullish 📈\n\n"))
	b.WriteString(pick(q, "Key Drivers:\n", "🚀 Key Drivers:\n"))
	bullets(&b, drivers)
	b.WriteString(pick(q, "\nRisks:\n", "\n⚠️ Risks:\n"))
	bullets(&b, risks)
	b.WriteString(pick(q, "\nRecommendations:\n", "\n💡 Recommendations:\n"))
	bullets(&b, recs)
	source(&b, "📰", newsSource)
	return n.out(b.String(), "news_analysis", map[string]any{
		"market_sentiment": "Bullish",
		"key_drivers":      drivers,
		"risks":            risks,
		"recommendations":  recs,
	})
}
