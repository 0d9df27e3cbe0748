// README: Risk analyzer; concentration and dispersion based risk score with recommendations.
package responders

import (
	"context"
	"fmt"
	"math"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

const (
	volatilityWeight = 0.4
	sectorWeight     = 0.3
	countryWeight    = 0.3

	minVolatility = 0.15
	maxVolatility = 0.35
)

type RiskReport struct {
	TotalValue           float64  `json:"total_value"`
	TotalInvestment      float64  `json:"total_investment"`
	Volatility           float64  `json:"volatility"`
	SectorConcentration  float64  `json:"sector_concentration"`
	CountryConcentration float64  `json:"country_concentration"`
	Score                float64  `json:"risk_score"`
	Level                string   `json:"risk_level"`
	Recommendations      []string `json:"recommendations"`
}

type RiskAnalyzer struct {
	src Holdings
}

func NewRiskAnalyzer(src Holdings) *RiskAnalyzer {
	return &RiskAnalyzer{src: src}
}

// Volatility estimates dispersion from the spread of per-stock returns,
// bounded to [0.15, 0.35].
func Volatility(h portfolio.Holdings) float64 {
	if len(h.Stocks) == 0 {
		return minVolatility
	}
	var mean float64
	for _, s := range h.Stocks {
		mean += s.PnLPct()
	}
	mean /= float64(len(h.Stocks))
	var variance float64
	for _, s := range h.Stocks {
		d := s.PnLPct() - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(h.Stocks)))
	return max(minVolatility, min(maxVolatility, minVolatility+std/100))
}

func Assess(h portfolio.Holdings) RiskReport {
	sum := portfolio.Summarize(h)
	r := RiskReport{
		TotalValue:           sum.TotalValue,
		TotalInvestment:      sum.TotalInvestment,
		Volatility:           Volatility(h),
		SectorConcentration:  portfolio.Concentration(portfolio.BySector(h)),
		CountryConcentration: portfolio.Concentration(portfolio.ByCountry(h)),
	}
	r.Score = min(1.0, r.Volatility*volatilityWeight+r.SectorConcentration*sectorWeight+r.CountryConcentration*countryWeight)
	switch {
	case r.Score < 0.3:
		r.Level = "Low"
	case r.Score < 0.6:
		r.Level = "Medium"
	default:
		r.Level = "High"
	}
	r.Recommendations = riskRecommendations(r.Score)
	return r
}

func riskRecommendations(score float64) []string {
	var out []string
	if score > 0.6 {
		out = append(out,
			"Consider reducing portfolio concentration in high-risk sectors",
			"Diversify across more countries to reduce geopolitical risk",
			"Consider adding defensive stocks or bonds")
	}
	if score > 0.4 {
		out = append(out,
			"Monitor sector concentration - consider rebalancing",
			"Review penny stock exposure and consider reducing if too high")
	}
	if score < 0.3 {
		out = append(out,
			"Portfolio appears well-diversified",
			"Consider adding growth opportunities if risk tolerance allows")
	}
	if len(out) == 0 {
		out = append(out, "Keep monitoring allocation as positions move")
	}
	return out
}

func (a *RiskAnalyzer) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := a.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("risk analyzer: %w", err)
	}
	r := Assess(h)

	var b strings.Builder
	if genz(q) {
		emoji, status := "✅", "Low Risk ✅"
		switch r.Level {
		case "High":
			emoji, status = "🚨", "HIGH RISK ALERT! 🚨"
		case "Medium":
			emoji, status = "⚠️", "Medium Risk ⚠️"
		}
		fmt.Fprintf(&b, "%s RISK ANALYSIS REPORT %s\n\n", emoji, emoji)
		fmt.Fprintf(&b, "📊 Risk Level: %s\n", status)
		fmt.Fprintf(&b, "🎯 Risk Score: %.2f%%\n", r.Score*100)
		fmt.Fprintf(&b, "📈 Volatility: %.2f%%\n\n", r.Volatility*100)
		b.WriteString("🔍 Key Findings:\n")
	} else {
		b.WriteString("Portfolio Risk Analysis Report\n\n")
		fmt.Fprintf(&b, "Risk Level: %s\n", r.Level)
		fmt.Fprintf(&b, "Risk Score: %.2f%%\n", r.Score*100)
		fmt.Fprintf(&b, "Volatility: %.2f%%\n\n", r.Volatility*100)
		b.WriteString("Key Risk Metrics:\n")
	}
	bullets(&b, []string{
		fmt.Sprintf("Sector Concentration: %.2f%%", r.SectorConcentration*100),
		fmt.Sprintf("Country Concentration: %.2f%%", r.CountryConcentration*100),
	})
	b.WriteString(pick(q, "\nRecommendations:\n", "\n💡 Recommendations:\n"))
	bullets(&b, r.Recommendations)
	source(&b, "⚠️", "Risk Analyzer Agent")

	return routing.Output{
		DisplayName: "Risk Analyzer",
		Text:        b.String(),
		Category:    "risk_analysis",
		Payload:     r,
	}, nil
}
