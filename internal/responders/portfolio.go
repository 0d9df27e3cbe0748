// README: Portfolio analyzer; summary, penny stocks, sector/country views, listings, performance and risk.
package responders

import (
	"context"
	"fmt"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
)

const portfolioSource = "Portfolio Analyzer Agent"

type PortfolioAnalyzer struct {
	src Holdings
}

func NewPortfolioAnalyzer(src Holdings) *PortfolioAnalyzer {
	return &PortfolioAnalyzer{src: src}
}

func (a *PortfolioAnalyzer) Respond(ctx context.Context, q routing.Query) (routing.Output, error) {
	h, err := a.src.Holdings(ctx)
	if err != nil {
		return routing.Output{}, fmt.Errorf("portfolio analyzer: %w", err)
	}
	text := strings.ToLower(q.Text)
	switch {
	case containsAny(text, "portfolio summary", "portfolio value"):
		return a.summary(h, q), nil
	case containsAny(text, "penny stocks", "low price stocks"):
		return a.penny(h, q), nil
	case containsAny(text, "sector analysis", "sector breakdown"):
		return a.groups(portfolio.BySector(h), q, "Sector Breakdown", "🏢", "sector_analysis"), nil
	case containsAny(text, "country analysis", "geographic breakdown"):
		return a.groups(portfolio.ByCountry(h), q, "Geographic Breakdown", "🌍", "country_analysis"), nil
	case containsAny(text, "enlist stocks", "list stocks", "show stocks"):
		return a.listStocks(h, q), nil
	case containsAny(text, "enlist sectors", "list sectors", "show sectors"):
		return a.listGroups(portfolio.BySector(h), q, "sectors", "sectors_list"), nil
	case containsAny(text, "enlist countries", "list countries", "show countries"):
		return a.listGroups(portfolio.ByCountry(h), q, "countries", "countries_list"), nil
	case containsAny(text, "performance", "returns"):
		return a.performance(h, q), nil
	case containsAny(text, "risk", "volatility"):
		return a.risk(h, q), nil
	}
	return a.comprehensive(h, q), nil
}

func (a *PortfolioAnalyzer) out(text, category string, payload any) routing.Output {
	return routing.Output{
		DisplayName: "Portfolio Analyzer",
		Text:        text,
		Category:    category,
		Payload:     payload,
	}
}

func (a *PortfolioAnalyzer) summary(h portfolio.Holdings, q routing.Query) routing.Output {
	s := portfolio.Summarize(h)
	var b strings.Builder
	if genz(q) {
		b.WriteString("🔥 Your Portfolio Status 🔥\n\n")
		fmt.Fprintf(&b, "💰 Total Value: %s\n", inr(s.TotalValue))
		fmt.Fprintf(&b, "📈 Total Investment: %s\n", inr(s.TotalInvestment))
		fmt.Fprintf(&b, "🚀 P&L: %s (%s)\n\n", inr(s.TotalPnL), pct(s.TotalPnLPct))
		b.WriteString(emojiStatus(s.TotalPnLPct) + "\n")
	} else {
		b.WriteString("Portfolio Summary:\n\n")
		fmt.Fprintf(&b, "Total Portfolio Value: %s\n", inr(s.TotalValue))
		fmt.Fprintf(&b, "Total Investment: %s\n", inr(s.TotalInvestment))
		fmt.Fprintf(&b, "Total P&L: %s (%s)\n\n", inr(s.TotalPnL), pct(s.TotalPnLPct))
		b.WriteString(performanceStatus(s.TotalPnLPct) + "\n")
	}
	source(&b, "📊", portfolioSource)
	return a.out(b.String(), "portfolio_summary", s)
}

func (a *PortfolioAnalyzer) penny(h portfolio.Holdings, q routing.Query) routing.Output {
	stocks := portfolio.PennyStocks(h)
	var b strings.Builder
	if genz(q) {
		b.WriteString("🪙 Your Penny Stocks Collection 🪙\n\n")
	}
	fmt.Fprintf(&b, "Found %d penny stocks in your portfolio:\n", len(stocks))
	for _, s := range stocks {
		b.WriteString("\n")
		if genz(q) {
			fmt.Fprintf(&b, "📊 %s (%s)\n", s.Name, s.Symbol)
			fmt.Fprintf(&b, "💵 Current: %s | Avg: %s\n", money(s.CurrentPrice, s.Currency), money(s.AvgPrice, s.Currency))
			fmt.Fprintf(&b, "📈 P&L: %s (%s)\n", money(s.PnL(), s.Currency), pct(s.PnLPct()))
		} else {
			fmt.Fprintf(&b, "%s (%s)\n", s.Name, s.Symbol)
			fmt.Fprintf(&b, "Current: %s | Avg: %s\n", money(s.CurrentPrice, s.Currency), money(s.AvgPrice, s.Currency))
			fmt.Fprintf(&b, "P&L: %s (%s)\n", money(s.PnL(), s.Currency), pct(s.PnLPct()))
		}
	}
	source(&b, "📊", portfolioSource)
	return a.out(b.String(), "penny_stocks_analysis", stocks)
}

func (a *PortfolioAnalyzer) groups(groups []portfolio.Group, q routing.Query, title, emoji, category string) routing.Output {
	var b strings.Builder
	if genz(q) {
		b.WriteString(emoji + " " + title + " " + emoji + "\n\n")
	} else {
		b.WriteString(title + ":\n\n")
	}
	for _, g := range groups {
		prefix := ""
		if genz(q) {
			prefix = "📊 "
			if category == "country_analysis" {
				prefix = flag(g.Name) + " "
			}
		}
		fmt.Fprintf(&b, "%s%s: %s\n", prefix, g.Name, inr(g.Value))
	}
	source(&b, "📊", portfolioSource)
	return a.out(b.String(), category, groups)
}

func (a *PortfolioAnalyzer) listStocks(h portfolio.Holdings, q routing.Query) routing.Output {
	var b strings.Builder
	if genz(q) {
		fmt.Fprintf(&b, "📈 Your Stock Collection (%d stocks) 📈\n\n", len(h.Stocks))
	} else {
		fmt.Fprintf(&b, "Portfolio Stocks (%d stocks):\n\n", len(h.Stocks))
	}
	for i, s := range h.Stocks {
		fmt.Fprintf(&b, "%d. %s %s (%s)\n", i+1, upDown(q, s.PnL()), s.Name, s.Symbol)
		if genz(q) {
			fmt.Fprintf(&b, "   💰 Qty: %d | Price: %s\n", s.Quantity, money(s.CurrentPrice, s.Currency))
			fmt.Fprintf(&b, "   🏢 %s | 🌍 %s\n", s.Sector, s.Country)
			fmt.Fprintf(&b, "   📊 P&L: %s (%s)\n\n", money(s.PnL(), s.Currency), signedPct(s.PnLPct()))
		} else {
			fmt.Fprintf(&b, "   Quantity: %d | Current Price: %s\n", s.Quantity, money(s.CurrentPrice, s.Currency))
			fmt.Fprintf(&b, "   Sector: %s | Country: %s\n", s.Sector, s.Country)
			fmt.Fprintf(&b, "   P&L: %s (%s)\n\n", money(s.PnL(), s.Currency), signedPct(s.PnLPct()))
		}
	}
	source(&b, "📊", portfolioSource)
	return a.out(b.String(), "stocks_list", map[string]any{"stocks": h.Stocks, "total_stocks": len(h.Stocks)})
}

func (a *PortfolioAnalyzer) listGroups(groups []portfolio.Group, q routing.Query, noun, category string) routing.Output {
	byCountry := category == "countries_list"
	var b strings.Builder
	switch {
	case genz(q) && byCountry:
		fmt.Fprintf(&b, "🌍 Your Geographic Breakdown (%d countries) 🌍\n\n", len(groups))
	case genz(q):
		fmt.Fprintf(&b, "🏢 Your Sector Breakdown (%d sectors) 🏢\n\n", len(groups))
	default:
		fmt.Fprintf(&b, "Portfolio %s (%d %s):\n\n", strings.ToUpper(noun[:1])+noun[1:], len(groups), noun)
	}
	for i, g := range groups {
		name := g.Name
		if genz(q) && byCountry {
			name = flag(g.Name) + " " + name
		}
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, upDown(q, g.PnL()), name)
		if genz(q) {
			fmt.Fprintf(&b, "   💰 Value: %s (%.1f%%)\n", inr(g.Value), g.AllocationPct)
			if byCountry {
				fmt.Fprintf(&b, "   📊 Stocks: %d | Sectors: %d\n", g.Count, g.Sectors)
				fmt.Fprintf(&b, "   📈 P&L: %s (%s)\n", inr(g.PnL()), signedPct(g.PnLPct()))
			} else {
				fmt.Fprintf(&b, "   📊 Stocks: %d | P&L: %s (%s)\n", g.Count, inr(g.PnL()), signedPct(g.PnLPct()))
			}
			fmt.Fprintf(&b, "   🏢 Companies: %s\n\n", headOf(g.Members, 3, " +%d more"))
		} else {
			fmt.Fprintf(&b, "   Value: %s (%.1f%% of portfolio)\n", inr(g.Value), g.AllocationPct)
			if byCountry {
				fmt.Fprintf(&b, "   Stocks: %d | Sectors: %d\n", g.Count, g.Sectors)
				fmt.Fprintf(&b, "   P&L: %s (%s)\n", inr(g.PnL()), signedPct(g.PnLPct()))
			} else {
				fmt.Fprintf(&b, "   Stocks: %d | P&L: %s (%s)\n", g.Count, inr(g.PnL()), signedPct(g.PnLPct()))
			}
			fmt.Fprintf(&b, "   Companies: %s\n\n", headOf(g.Members, 3, " and %d more"))
		}
	}
	source(&b, "📊", portfolioSource)
	return a.out(b.String(), category, map[string]any{noun: groups, "total_" + noun: len(groups)})
}

func (a *PortfolioAnalyzer) performance(h portfolio.Holdings, q routing.Query) routing.Output {
	s := portfolio.Summarize(h)
	var b strings.Builder
	b.WriteString(pick(q, "Performance Analysis:\n\n", "📊 Performance Analysis 📊\n\n"))
	fmt.Fprintf(&b, "%sOverall Return: %s\n", pick(q, "", "🎯 "), pct(s.TotalPnLPct))
	fmt.Fprintf(&b, "%sAbsolute Gain: %s\n\n", pick(q, "", "💰 "), inr(s.TotalPnL))
	b.WriteString(performanceInsight(s.TotalPnLPct) + "\n")
	return a.out(b.String(), "performance_analysis", s)
}

func (a *PortfolioAnalyzer) risk(h portfolio.Holdings, q routing.Query) routing.Output {
	d := portfolio.Diversify(h)
	var b strings.Builder
	b.WriteString(pick(q, "Risk Analysis:\n\n", "⚠️ Risk Analysis ⚠️\n\n"))
	fmt.Fprintf(&b, "%sDiversification Score: %d/10\n", pick(q, "", "📈 "), d.Score)
	fmt.Fprintf(&b, "%sSectors: %d\n", pick(q, "", "🏢 "), d.Sectors)
	fmt.Fprintf(&b, "%sCountries: %d\n", pick(q, "", "🌍 "), d.Countries)
	fmt.Fprintf(&b, "%sTotal Stocks: %d\n\n", pick(q, "", "📊 "), d.Stocks)
	b.WriteString(riskInsight(d) + "\n")
	return a.out(b.String(), "risk_analysis", d)
}

func (a *PortfolioAnalyzer) comprehensive(h portfolio.Holdings, q routing.Query) routing.Output {
	s := portfolio.Summarize(h)
	d := portfolio.Diversify(h)
	var b strings.Builder
	b.WriteString(pick(q, "Complete Portfolio Analysis:\n\n", "🚀 Complete Portfolio Analysis 🚀\n\n"))
	fmt.Fprintf(&b, "%sPortfolio Value: %s\n", pick(q, "", "💰 "), inr(s.TotalValue))
	fmt.Fprintf(&b, "%sTotal Return: %s\n", pick(q, "", "📈 "), pct(s.TotalPnLPct))
	fmt.Fprintf(&b, "%sP&L: %s\n\n", pick(q, "", "🎯 "), inr(s.TotalPnL))
	b.WriteString(pick(q, "Quick Stats:\n", "📊 Quick Stats:\n"))
	bullets(&b, []string{
		fmt.Sprintf("%d stocks", d.Stocks),
		fmt.Sprintf("%d sectors", d.Sectors),
		fmt.Sprintf("%d countries", d.Countries),
	})
	b.WriteString("\n" + pick(q, performanceStatus(s.TotalPnLPct), emojiStatus(s.TotalPnLPct)) + "\n")
	return a.out(b.String(), "comprehensive_analysis", s)
}

func emojiStatus(p float64) string {
	switch {
	case p > 20:
		return "🔥🔥🔥 AMAZING PERFORMANCE! 🔥🔥🔥"
	case p > 10:
		return "🚀 Great job! Portfolio is killing it! 🚀"
	case p > 0:
		return "✅ Good performance! Keep it up! ✅"
	}
	return "😔 Tough market, but stay strong! 💪"
}

func performanceStatus(p float64) string {
	switch {
	case p > 20:
		return "Excellent performance! Portfolio is performing exceptionally well."
	case p > 10:
		return "Good performance! Portfolio is showing positive returns."
	case p > 0:
		return "Positive performance! Portfolio is in the green."
	}
	return "Portfolio is currently down, but markets are cyclical."
}

func performanceInsight(p float64) string {
	switch {
	case p > 15:
		return "Your portfolio is outperforming most benchmarks!"
	case p > 8:
		return "Solid performance with good diversification."
	case p > 0:
		return "Positive returns, consider reviewing allocation."
	}
	return "Consider reviewing your investment strategy."
}

func riskInsight(d portfolio.Diversification) string {
	switch {
	case d.Stocks >= 10 && d.Sectors >= 5 && d.Countries >= 2:
		return "Excellent diversification! Low risk portfolio."
	case d.Stocks >= 5 && d.Sectors >= 3:
		return "Good diversification. Moderate risk."
	}
	return "Consider diversifying more to reduce risk."
}
