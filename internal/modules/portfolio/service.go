// README: Portfolio service; loads holdings from the configured source and overlays live prices.
package portfolio

import (
	"context"
	"log"
)

// Source yields the raw holdings (built-in dataset or Postgres).
type Source interface {
	Holdings(ctx context.Context) (Holdings, error)
}

// LivePricer returns current prices keyed by symbol.
type LivePricer interface {
	LivePrices(ctx context.Context, symbols []string) (map[string]float64, error)
}

type Service struct {
	src  Source
	live LivePricer
}

func NewService(src Source, live LivePricer) *Service {
	return &Service{src: src, live: live}
}

// SetLivePricer attaches a price overlay after construction; the pricing
// service itself reads catalogue prices from this service.
func (s *Service) SetLivePricer(live LivePricer) {
	s.live = live
}

// Catalog returns holdings exactly as stored, without the live overlay.
func (s *Service) Catalog(ctx context.Context) (Holdings, error) {
	return s.src.Holdings(ctx)
}

// Holdings returns holdings with live prices applied where available. A
// pricing failure is logged and the stored prices are kept.
func (s *Service) Holdings(ctx context.Context) (Holdings, error) {
	h, err := s.src.Holdings(ctx)
	if err != nil {
		return Holdings{}, err
	}
	if s.live == nil {
		return h, nil
	}
	prices, err := s.live.LivePrices(ctx, h.Symbols())
	if err != nil {
		log.Printf("portfolio: live prices unavailable: %v", err)
		return h, nil
	}
	for i := range h.Stocks {
		if p, ok := prices[h.Stocks[i].Symbol]; ok && p > 0 {
			h.Stocks[i].CurrentPrice = p
		}
	}
	return h, nil
}

// CatalogPrice is the stored price for symbol, used as the pricing feed.
func (s *Service) CatalogPrice(ctx context.Context, symbol string) (float64, error) {
	h, err := s.src.Holdings(ctx)
	if err != nil {
		return 0, err
	}
	st, ok := h.Stock(symbol)
	if !ok {
		return 0, ErrNotFound
	}
	return st.CurrentPrice, nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	h, err := s.Holdings(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(h), nil
}

func (s *Service) PennyStocks(ctx context.Context) ([]Stock, error) {
	h, err := s.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	return PennyStocks(h), nil
}

// Analysis builds the payload for one analysis view.
func (s *Service) Analysis(ctx context.Context, kind AnalysisType) (map[string]any, error) {
	h, err := s.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	summary := Summarize(h)
	switch kind {
	case AnalysisSummary:
		return map[string]any{
			"summary":            summary,
			"total_stocks":       len(h.Stocks),
			"total_mutual_funds": len(h.Funds),
		}, nil
	case AnalysisDetailed:
		return map[string]any{
			"summary":         summary,
			"stocks":          h.Stocks,
			"mutual_funds":    h.Funds,
			"diversification": Diversify(h),
		}, nil
	case AnalysisSectors:
		return map[string]any{"summary": summary, "sectors": BySector(h)}, nil
	case AnalysisCountries:
		return map[string]any{"summary": summary, "countries": ByCountry(h)}, nil
	}
	return nil, ErrBadAnalysis
}
