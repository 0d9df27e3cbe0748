// README: Intent identifiers and their fixed declaration order.
package intent

import "strings"

type Intent string

const (
	PortfolioAnalysis Intent = "portfolio_analysis"
	NewsAnalysis      Intent = "news_analysis"
	InvestmentAdvice  Intent = "investment_advice"
	PersonalInfo      Intent = "personal_info"
	RiskAssessment    Intent = "risk_assessment"
	MarketResearch    Intent = "market_research"
	TechnicalAnalysis Intent = "technical_analysis"
	SentimentAnalysis Intent = "sentiment_analysis"
)

// order is the declaration order; it also resolves score ties.
var order = []Intent{
	PortfolioAnalysis,
	NewsAnalysis,
	InvestmentAdvice,
	PersonalInfo,
	RiskAssessment,
	MarketResearch,
	TechnicalAnalysis,
	SentimentAnalysis,
}

// All returns every known intent in declaration order.
func All() []Intent {
	out := make([]Intent, len(order))
	copy(out, order)
	return out
}

func (i Intent) Valid() bool {
	for _, known := range order {
		if known == i {
			return true
		}
	}
	return false
}

// Title renders the identifier for display, e.g. "Portfolio Analysis".
func (i Intent) Title() string {
	return TitleCase(string(i))
}

// TitleCase turns snake_case identifiers into space separated title words.
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for n, w := range words {
		words[n] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
