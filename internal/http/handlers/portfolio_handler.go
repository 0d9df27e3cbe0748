// README: Portfolio handler (analysis views, penny stocks, live prices).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/pricing"
)

type PortfolioHandler struct {
	portfolio *portfolio.Service
	pricing   *pricing.Service
	timeout   time.Duration
}

func NewPortfolioHandler(portSvc *portfolio.Service, priceSvc *pricing.Service, timeout time.Duration) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portSvc, pricing: priceSvc, timeout: timeout}
}

// Analysis handles GET /portfolio?analysis_type=summary|detailed|sectors|countries.
func (h *PortfolioHandler) Analysis(c *gin.Context) {
	kind, err := portfolio.ParseAnalysisType(c.Query("analysis_type"))
	if err != nil {
		writePortfolioError(c, err)
		return
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	data, err := h.portfolio.Analysis(ctx, kind)
	if err != nil {
		writePortfolioError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"data":      data,
		"summary":   data["summary"],
		"timestamp": now(),
	})
}

// PennyStocks handles GET /portfolio/penny-stocks.
func (h *PortfolioHandler) PennyStocks(c *gin.Context) {
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	stocks, err := h.portfolio.PennyStocks(ctx)
	if err != nil {
		writePortfolioError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"penny_stocks": stocks,
		"count":        len(stocks),
		"timestamp":    now(),
	})
}

// LivePrices handles GET /data/live-prices.
func (h *PortfolioHandler) LivePrices(c *gin.Context) {
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	held, err := h.portfolio.Catalog(ctx)
	if err != nil {
		writePortfolioError(c, err)
		return
	}
	prices, err := h.pricing.LivePrices(ctx, held.Symbols())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"prices":    prices,
		"timestamp": now(),
	})
}
