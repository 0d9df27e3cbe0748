// README: Holding types (stocks, mutual funds) and derived analytics result shapes.
package portfolio

import (
	"errors"

	"wealthlens/internal/types"
)

var (
	ErrNotFound    = errors.New("holding not found")
	ErrBadAnalysis = errors.New("unknown analysis type")
	ErrNoHoldings  = errors.New("no holdings")
)

// BaseCurrency is the reporting currency for aggregates.
const BaseCurrency = types.INR

// PennyThreshold is the price below which a stock counts as a penny stock.
const PennyThreshold = 20.0

type Stock struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	AvgPrice     float64 `json:"avg_price"`
	CurrentPrice float64 `json:"current_price"`
	Currency     string  `json:"currency"`
	Sector       string  `json:"sector"`
	Country      string  `json:"country"`
	MarketCap    string  `json:"market_cap"`
}

func (s Stock) Value() float64      { return float64(s.Quantity) * s.CurrentPrice }
func (s Stock) Investment() float64 { return float64(s.Quantity) * s.AvgPrice }
func (s Stock) PnL() float64        { return s.Value() - s.Investment() }

func (s Stock) PnLPct() float64 {
	if s.AvgPrice == 0 {
		return 0
	}
	return (s.CurrentPrice - s.AvgPrice) / s.AvgPrice * 100
}

type Fund struct {
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	NAV        float64 `json:"nav"`
	CurrentNAV float64 `json:"current_nav"`
	Category   string  `json:"category"`
}

func (f Fund) Value() float64      { return float64(f.Quantity) * f.CurrentNAV }
func (f Fund) Investment() float64 { return float64(f.Quantity) * f.NAV }

type Holdings struct {
	Stocks []Stock `json:"stocks"`
	Funds  []Fund  `json:"mutual_funds"`
}

func (h Holdings) Symbols() []string {
	out := make([]string, len(h.Stocks))
	for i, s := range h.Stocks {
		out[i] = s.Symbol
	}
	return out
}

func (h Holdings) Stock(symbol string) (Stock, bool) {
	for _, s := range h.Stocks {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return Stock{}, false
}

type Summary struct {
	TotalValue      float64 `json:"total_value"`
	TotalInvestment float64 `json:"total_investment"`
	TotalPnL        float64 `json:"total_pnl"`
	TotalPnLPct     float64 `json:"total_pnl_percentage"`
	Currency        string  `json:"currency"`
}

// Group aggregates stocks sharing a sector or a country, in first-seen order.
type Group struct {
	Name          string   `json:"name"`
	Value         float64  `json:"total_value"`
	Investment    float64  `json:"total_investment"`
	Count         int      `json:"stock_count"`
	Members       []string `json:"stocks"`
	Sectors       int      `json:"sectors,omitempty"`
	AllocationPct float64  `json:"allocation_percentage"`
}

func (g Group) PnL() float64 { return g.Value - g.Investment }

func (g Group) PnLPct() float64 {
	if g.Investment == 0 {
		return 0
	}
	return g.PnL() / g.Investment * 100
}

type Diversification struct {
	Score     int `json:"score"`
	Stocks    int `json:"total_stocks"`
	Sectors   int `json:"sectors"`
	Countries int `json:"countries"`
}

type AnalysisType string

const (
	AnalysisSummary   AnalysisType = "summary"
	AnalysisDetailed  AnalysisType = "detailed"
	AnalysisSectors   AnalysisType = "sectors"
	AnalysisCountries AnalysisType = "countries"
)

func ParseAnalysisType(v string) (AnalysisType, error) {
	switch t := AnalysisType(v); t {
	case AnalysisSummary, AnalysisDetailed, AnalysisSectors, AnalysisCountries:
		return t, nil
	case "":
		return AnalysisSummary, nil
	}
	return "", ErrBadAnalysis
}
