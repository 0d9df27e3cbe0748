// README: Sentiment analyzer; per-stock social/news/institutional readings from a stable hash of the symbol.
package responders

import (
	"context"
	"fmt"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

var sentimentTrends = []string{"Improving", "Stable", "Declining"}

type StockSentiment struct {
	Symbol        string   `json:"symbol"`
	Social        float64  `json:"social_sentiment"`
	News          float64  `json:"news_sentiment"`
	Institutional float64  `json:"institutional_sentiment"`
	Overall       float64  `json:"overall_sentiment"`
	Category      string   `json:"sentiment_category"`
	Score         int      `json:"sentiment_score"`
	Trend         string   `json:"trend"`
	Drivers       []string `json:"key_drivers"`
}

type SentimentReport struct {
	Stocks   []StockSentiment  `json:"stock_sentiment"`
	Average  float64           `json:"average_sentiment"`
	Mood     string            `json:"overall_mood"`
	Bullish  int               `json:"bullish_stocks"`
	Bearish  int               `json:"bearish_stocks"`
	Score    int               `json:"sentiment_score"`
	Channels map[string]string `json:"sentiment_indicators"`
}

func categorize(v float64) string {
	switch {
	case v > 0.5:
		return "Very Bullish"
	case v > 0.2:
		return "Bullish"
	case v > -0.2:
		return "Neutral"
	case v > -0.5:
		return "Bearish"
	}
	return "Very Bearish"
}

// scoreOf maps [-1, 1] onto [0, 100].
func scoreOf(v float64) int { return int((v + 1) * 50) }

func sentimentDrivers(category string) []string {
	switch {
	case strings.Contains(category, "Bullish"):
		return []string{"Positive earnings reports", "Strong analyst recommendations", "Institutional buying activity", "Positive social media buzz"}
	case strings.Contains(category, "Bearish"):
		return []string{"Negative news coverage", "Analyst downgrades", "Institutional selling", "Negative social media sentiment"}
	}
	return []string{"Mixed analyst opinions", "Neutral news coverage", "Balanced institutional activity", "Mixed social media sentiment"}
}

func Sentiments(h portfolio.Holdings) SentimentReport {
	r := SentimentReport{
		Channels: map[string]string{
			"twitter":             "positive",
			"reddit":              "neutral",
			"headlines":           "positive",
			"analyst_ratings":     "bullish",
			"institutional_flows": "positive",
		},
	}
	for _, s := range h.Stocks {
		st := StockSentiment{
			Symbol:        s.Symbol,
			Social:        between(s.Symbol, "social", -1, 1),
			News:          between(s.Symbol, "news", -1, 1),
			Institutional: between(s.Symbol, "institutional", -1, 1),
			Trend:         choose(s.Symbol, "sentiment-trend", sentimentTrends),
		}
		st.Overall = (st.Social + st.News + st.Institutional) / 3
		st.Category = categorize(st.Overall)
		st.Score = scoreOf(st.Overall)
		st.Drivers = sentimentDrivers(st.Category)
		r.Stocks = append(r.Stocks, st)
		r.Average += st.Overall
		switch {
		case strings.Contains(st.Category, "Bullish"):
			r.Bullish++
		case strings.Contains(st.Category, "Bearish"):
			r.Bearish++
		}
	}
	if len(r.Stocks) > 0 {
		r.Average /= float64(len(r.Stocks))
	}
	r.Mood = categorize(r.Average)
	r.Score = scoreOf(r.Average)
	return r
}

type SentimentAnalyzer struct {
	src Holdings
}

func NewSentimentAnalyzer(src Holdings) *SentimentAnalyzer {
	return &SentimentAnalyzer{src: src}
}

func (a *SentimentAnalyzer) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := a.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("sentiment analyzer: %w", err)
	}
	r := Sentiments(h)

	var b strings.Builder
	b.WriteString(pick(q, "Market Sentiment Analysis\n\n", "😎 SENTIMENT CHECK 😎\n\n"))
	fmt.Fprintf(&b, "%sOverall Mood: %s (score %d/100)\n", pick(q, "", "🎯 "), r.Mood, r.Score)
	fmt.Fprintf(&b, "%sBullish: %d | Bearish: %d | Neutral: %d\n\n", pick(q, "", "📊 "), r.Bullish, r.Bearish, len(r.Stocks)-r.Bullish-r.Bearish)
	b.WriteString(pick(q, "Stock Sentiment:\n", "🔥 VIBE CHECK BY STOCK:\n"))
	for _, s := range r.Stocks {
		mark := "•"
		if genz(q) {
			switch {
			case strings.Contains(s.Category, "Bullish"):
				mark = "🚀"
			case strings.Contains(s.Category, "Bearish"):
				mark = "📉"
			default:
				mark = "😐"
			}
		}
		fmt.Fprintf(&b, "%s %s: %s (%d/100, %s)\n", mark, s.Symbol, s.Category, s.Score, s.Trend)
	}
	source(&b, "😎", "Sentiment Analyzer Agent")

	return routing.Output{
		DisplayName: "Sentiment Analyzer",
		Text:        b.String(),
		Category:    "sentiment_analysis",
		Payload:     r,
	}, nil
}
