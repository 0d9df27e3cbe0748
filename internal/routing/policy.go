// README: Routing policy; turns a classification into the ordered set of intents to dispatch.
package routing

import "wealthlens/internal/intent"

// Pair is an unordered pair of intents whose responders are useful together.
type Pair [2]intent.Intent

// Config holds the routing thresholds.
type Config struct {
	PrimaryFloor           float64
	SecondaryDispatchFloor float64
	HighConfidence         float64
	ComplexQueryTokens     int
	Complementary          []Pair
}

func DefaultConfig() Config {
	return Config{
		PrimaryFloor:           0.25,
		SecondaryDispatchFloor: 0.4,
		HighConfidence:         0.8,
		ComplexQueryTokens:     5,
		Complementary:          DefaultPairs(),
	}
}

func DefaultPairs() []Pair {
	return []Pair{
		{intent.PortfolioAnalysis, intent.RiskAssessment},
		{intent.PortfolioAnalysis, intent.InvestmentAdvice},
		{intent.InvestmentAdvice, intent.MarketResearch},
		{intent.InvestmentAdvice, intent.TechnicalAnalysis},
		{intent.NewsAnalysis, intent.SentimentAnalysis},
	}
}

func (c Config) complementary(a, b intent.Intent) bool {
	for _, p := range c.Complementary {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// Decision is the outcome of routing one classification.
type Decision struct {
	Selected []intent.Intent `json:"selected"`
	Fallback bool            `json:"fallback"`
}

// Route applies the policy. It is a pure function of res and cfg; when nothing
// qualifies the decision holds only the fallback intent.
func Route(res intent.Result, cfg Config, fallback intent.Intent) Decision {
	var selected []intent.Intent
	if res.Confidence > cfg.PrimaryFloor {
		selected = append(selected, res.Primary)
	}
	if res.Confidence <= cfg.HighConfidence {
		compound := res.TokenCount > cfg.ComplexQueryTokens
		for _, sec := range res.Secondary {
			if sec == res.Primary || res.Scores[sec] <= cfg.SecondaryDispatchFloor {
				continue
			}
			if compound || cfg.complementary(res.Primary, sec) {
				selected = append(selected, sec)
			}
		}
	}
	if len(selected) == 0 {
		return Decision{Selected: []intent.Intent{fallback}, Fallback: true}
	}
	return Decision{Selected: selected}
}
