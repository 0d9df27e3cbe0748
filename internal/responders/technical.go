// README: Technical analyzer; per-stock indicator readings derived from a stable hash of the symbol.
package responders

import (
	"context"
	"fmt"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

var chartPatterns = map[string][]string{
	"bullish": {"Ascending Triangle", "Cup and Handle", "Double Bottom", "Golden Cross"},
	"bearish": {"Descending Triangle", "Head and Shoulders", "Double Top", "Death Cross"},
	"neutral": {"Rectangle", "Pennant", "Flag", "Symmetrical Triangle"},
}

var (
	patternKinds = []string{"bullish", "bearish", "neutral"}
	macdStates   = []string{"positive", "negative", "neutral"}
	maTrends     = []string{"bullish", "bearish", "neutral"}
)

type Indicators struct {
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	RSI             float64  `json:"rsi"`
	MACD            string   `json:"macd_signal"`
	MovingAverage   string   `json:"moving_average_trend"`
	Pattern         string   `json:"chart_pattern"`
	PatternKind     string   `json:"pattern_kind"`
	Signal          string   `json:"technical_signal"`
	Support         float64  `json:"support_level"`
	Resistance      float64  `json:"resistance_level"`
	Currency        string   `json:"currency"`
	Recommendations []string `json:"recommendations"`
}

type TechnicalReport struct {
	Stocks  []Indicators `json:"stock_analysis"`
	Buy     int          `json:"buy_signals"`
	Sell    int          `json:"sell_signals"`
	Hold    int          `json:"hold_signals"`
	Overall string       `json:"overall_signal"`
}

func readIndicators(s portfolio.Stock) Indicators {
	kind := choose(s.Symbol, "pattern-kind", patternKinds)
	ind := Indicators{
		Symbol:        s.Symbol,
		Name:          s.Name,
		RSI:           between(s.Symbol, "rsi", 20, 80),
		MACD:          choose(s.Symbol, "macd", macdStates),
		MovingAverage: choose(s.Symbol, "ma", maTrends),
		Pattern:       choose(s.Symbol, "pattern", chartPatterns[kind]),
		PatternKind:   kind,
		Support:       s.CurrentPrice * between(s.Symbol, "support", 0.85, 0.95),
		Resistance:    s.CurrentPrice * between(s.Symbol, "resistance", 1.05, 1.15),
		Currency:      s.Currency,
	}
	ind.Signal = technicalSignal(ind)
	ind.Recommendations = technicalRecommendations(ind)
	return ind
}

func technicalSignal(ind Indicators) string {
	bull, bear := 0, 0
	switch {
	case ind.RSI < 30:
		bull++
	case ind.RSI > 70:
		bear++
	}
	for _, v := range []string{ind.MACD, ind.MovingAverage, ind.PatternKind} {
		switch v {
		case "positive", "bullish":
			bull++
		case "negative", "bearish":
			bear++
		}
	}
	switch {
	case bull > bear && bull >= 3:
		return "Strong Buy"
	case bull > bear:
		return "Buy"
	case bear > bull && bear >= 3:
		return "Strong Sell"
	case bear > bull:
		return "Sell"
	}
	return "Hold"
}

func technicalRecommendations(ind Indicators) []string {
	var out []string
	switch ind.Signal {
	case "Strong Buy", "Buy":
		out = append(out, "Consider adding to position", "Set stop-loss below support level")
	case "Strong Sell", "Sell":
		out = append(out, "Consider reducing position", "Wait for better entry point")
	default:
		out = append(out, "Monitor for breakout/breakdown", "Maintain current position")
	}
	switch {
	case ind.RSI < 30:
		out = append(out, "RSI indicates oversold conditions - potential bounce")
	case ind.RSI > 70:
		out = append(out, "RSI indicates overbought conditions - potential pullback")
	}
	switch ind.PatternKind {
	case "bullish":
		out = append(out, "Chart pattern suggests upward momentum")
	case "bearish":
		out = append(out, "Chart pattern suggests downward pressure")
	}
	return out
}

func Technicals(h portfolio.Holdings) TechnicalReport {
	var r TechnicalReport
	for _, s := range h.Stocks {
		ind := readIndicators(s)
		r.Stocks = append(r.Stocks, ind)
		switch {
		case strings.Contains(ind.Signal, "Buy"):
			r.Buy++
		case strings.Contains(ind.Signal, "Sell"):
			r.Sell++
		default:
			r.Hold++
		}
	}
	r.Overall = "Neutral"
	if n := float64(len(r.Stocks)); n > 0 {
		switch {
		case float64(r.Buy)/n > 0.5:
			r.Overall = "Bullish"
		case float64(r.Sell)/n > 0.5:
			r.Overall = "Bearish"
		}
	}
	return r
}

type TechnicalAnalyzer struct {
	src Holdings
}

func NewTechnicalAnalyzer(src Holdings) *TechnicalAnalyzer {
	return &TechnicalAnalyzer{src: src}
}

func (t *TechnicalAnalyzer) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := t.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("technical analyzer: %w", err)
	}
	r := Technicals(h)

	var b strings.Builder
	b.WriteString(pick(q, "Technical Analysis Report\n\n", "📈 TECHNICAL ANALYSIS REPORT 📈\n\n"))
	fmt.Fprintf(&b, "%sOverall Signal: %s\n", pick(q, "", "🎯 "), r.Overall)
	fmt.Fprintf(&b, "%sBuy: %d | Sell: %d | Hold: %d\n\n", pick(q, "", "📊 "), r.Buy, r.Sell, r.Hold)
	b.WriteString(pick(q, "Stock Analysis:\n", "🔍 STOCK BREAKDOWN:\n"))
	for _, ind := range r.Stocks {
		mark := "•"
		if genz(q) {
			switch {
			case strings.Contains(ind.Signal, "Buy"):
				mark = "🟢"
			case strings.Contains(ind.Signal, "Sell"):
				mark = "🔴"
			default:
				mark = "🟡"
			}
		}
		fmt.Fprintf(&b, "%s %s: %s (RSI %.1f, MACD %s)\n", mark, ind.Symbol, ind.Signal, ind.RSI, ind.MACD)
		fmt.Fprintf(&b, "  Pattern: %s (%s) | Support: %s | Resistance: %s\n",
			ind.Pattern, ind.PatternKind, money(ind.Support, ind.Currency), money(ind.Resistance, ind.Currency))
	}
	source(&b, "📈", "Technical Analyzer Agent")

	return routing.Output{
		DisplayName: "Technical Analyzer",
		Text:        b.String(),
		Category:    "technical_analysis",
		Payload:     r,
	}, nil
}
