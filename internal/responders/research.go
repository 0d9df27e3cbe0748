// README: Market research; sector outlooks for the sectors held in the portfolio.
package responders

import (
	"context"
	"fmt"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

type SectorOutlook struct {
	Sector          string   `json:"sector"`
	Growth          float64  `json:"growth_rate"`
	Trend           string   `json:"trend"`
	Drivers         []string `json:"key_drivers"`
	Risks           []string `json:"risks"`
	Outlook         string   `json:"outlook"`
	Recommendations []string `json:"recommendations"`
}

type ResearchReport struct {
	Sectors        []SectorOutlook `json:"sector_analysis"`
	AverageGrowth  float64         `json:"average_growth"`
	Sentiment      string          `json:"sentiment"`
	BullishSectors int             `json:"bullish_sectors"`
	Insights       []string        `json:"key_insights"`
	Trends         []string        `json:"market_trends"`
	Themes         []string        `json:"investment_themes"`
}

var sectorProfiles = map[string]SectorOutlook{
	"Technology": {Growth: 0.12, Trend: "Bullish", Drivers: []string{"AI/ML", "Cloud Computing", "Cybersecurity"}, Risks: []string{"Regulation", "Competition", "Economic Downturn"}},
	"Healthcare": {Growth: 0.08, Trend: "Stable", Drivers: []string{"Biotech", "Digital Health", "Aging Population"}, Risks: []string{"Regulation", "Patent Expiry", "Pricing Pressure"}},
	"Finance":    {Growth: 0.06, Trend: "Moderate", Drivers: []string{"Fintech", "Digital Banking", "ESG Investing"}, Risks: []string{"Interest Rates", "Regulation", "Cybersecurity"}},
	"Consumer":   {Growth: 0.04, Trend: "Stable", Drivers: []string{"E-commerce", "Sustainability", "Personalization"}, Risks: []string{"Inflation", "Supply Chain", "Consumer Spending"}},
	"Energy":     {Growth: 0.03, Trend: "Transition", Drivers: []string{"Renewables", "EV Adoption", "Energy Storage"}, Risks: []string{"Policy Changes", "Commodity Prices", "Technology Disruption"}},
}

// sectorAliases maps portfolio sector labels onto the research profiles.
var sectorAliases = map[string]string{
	"IT":                     "Technology",
	"Banking":                "Finance",
	"Consumer Discretionary": "Consumer",
}

var trends = []string{"Bullish", "Stable", "Bearish"}

func outlookFor(sector string) SectorOutlook {
	key := sector
	if alias, ok := sectorAliases[sector]; ok {
		key = alias
	}
	o, ok := sectorProfiles[key]
	if !ok {
		o = SectorOutlook{
			Growth:          between(sector, "growth", 0.02, 0.10),
			Trend:           choose(sector, "trend", trends),
			Drivers:         []string{"Innovation", "Market Demand", "Global Trends"},
			Risks:           []string{"Competition", "Economic Factors", "Regulation"},
			Outlook:         "Moderate growth expected with some volatility",
			Recommendations: []string{"Monitor sector performance", "Diversify within sector"},
		}
	}
	o.Sector = sector
	if o.Outlook == "" {
		switch {
		case o.Growth > 0.08 && o.Trend == "Bullish":
			o.Outlook = "Strong growth potential with positive momentum"
		case o.Growth > 0.05:
			o.Outlook = "Moderate growth with stable fundamentals"
		default:
			o.Outlook = "Slower growth but potential for value opportunities"
		}
	}
	if o.Recommendations == nil {
		switch o.Trend {
		case "Bullish":
			o.Recommendations = []string{"Consider increasing exposure to high-growth areas", "Focus on companies with strong competitive advantages"}
		case "Bearish":
			o.Recommendations = []string{"Reduce exposure or focus on defensive positions", "Look for value opportunities in beaten-down stocks"}
		default:
			o.Recommendations = []string{"Maintain balanced exposure", "Focus on quality companies with strong fundamentals"}
		}
	}
	return o
}

func Research(h portfolio.Holdings) ResearchReport {
	r := ResearchReport{
		Insights: []string{
			"Technology and Healthcare showing strong growth potential",
			"Energy sector in transition phase with opportunities",
			"Consumer sector stable but sensitive to economic conditions",
		},
		Trends: []string{
			"AI and Machine Learning driving technology growth",
			"ESG investing gaining momentum",
			"Digital transformation across industries",
			"Supply chain resilience becoming priority",
			"Renewable energy adoption accelerating",
		},
		Themes: []string{
			"Digital Transformation",
			"Sustainability & ESG",
			"Healthcare Innovation",
			"Fintech Disruption",
			"Clean Energy Transition",
		},
	}
	for _, g := range portfolio.BySector(h) {
		o := outlookFor(g.Name)
		r.Sectors = append(r.Sectors, o)
		r.AverageGrowth += o.Growth
		if o.Trend == "Bullish" {
			r.BullishSectors++
		}
	}
	r.Sentiment = "Cautious"
	if n := len(r.Sectors); n > 0 {
		r.AverageGrowth /= float64(n)
		share := float64(r.BullishSectors) / float64(n)
		switch {
		case share > 0.6:
			r.Sentiment = "Positive"
		case share > 0.3:
			r.Sentiment = "Neutral"
		}
	}
	return r
}

type MarketResearch struct {
	src Holdings
}

func NewMarketResearch(src Holdings) *MarketResearch {
	return &MarketResearch{src: src}
}

func (m *MarketResearch) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := m.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("market research: %w", err)
	}
	r := Research(h)

	var b strings.Builder
	if genz(q) {
		b.WriteString("🔍 MARKET RESEARCH REPORT 🔍\n\n")
		fmt.Fprintf(&b, "📊 Overall Sentiment: %s\n", r.Sentiment)
		fmt.Fprintf(&b, "📈 Average Growth: %.2f%%\n", r.AverageGrowth*100)
		fmt.Fprintf(&b, "🚀 Bullish Sectors: %d/%d\n\n", r.BullishSectors, len(r.Sectors))
		b.WriteString("🎯 SECTOR BREAKDOWN:\n")
		for _, s := range r.Sectors {
			emoji := "⚠️"
			switch s.Trend {
			case "Bullish":
				emoji = "🚀"
			case "Stable":
				emoji = "📊"
			}
			fmt.Fprintf(&b, "%s %s: %s (%.2f%% growth)\n", emoji, s.Sector, s.Trend, s.Growth*100)
		}
		b.WriteString("\n💡 KEY INSIGHTS:\n")
		bullets(&b, r.Insights)
		b.WriteString("\n🔥 HOT TRENDS:\n")
	} else {
		b.WriteString("Market Research Report\n\n")
		fmt.Fprintf(&b, "Overall Sentiment: %s\n", r.Sentiment)
		fmt.Fprintf(&b, "Average Growth Rate: %.2f%%\n", r.AverageGrowth*100)
		fmt.Fprintf(&b, "Bullish Sectors: %d/%d\n\n", r.BullishSectors, len(r.Sectors))
		b.WriteString("Sector Analysis:\n")
		for _, s := range r.Sectors {
			fmt.Fprintf(&b, "• %s: %s (%.2f%% growth)\n", s.Sector, s.Trend, s.Growth*100)
			fmt.Fprintf(&b, "  Outlook: %s\n", s.Outlook)
		}
		b.WriteString("\nKey Insights:\n")
		bullets(&b, r.Insights)
		b.WriteString("\nMarket Trends:\n")
	}
	bullets(&b, r.Trends[:3])
	source(&b, "🔍", "Market Research Agent")

	return routing.Output{
		DisplayName: "Market Research",
		Text:        b.String(),
		Category:    "market_research",
		Payload:     r,
	}, nil
}
