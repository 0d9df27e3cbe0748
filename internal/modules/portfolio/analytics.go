// README: Pure portfolio analytics (summary, penny stocks, sector/country groups, diversification).
package portfolio

import "wealthlens/internal/types"

// toBase converts an amount into BaseCurrency. Pairs without a known rate
// are taken at face value.
func toBase(amount float64, currency string) float64 {
	if currency == "" {
		return amount
	}
	r, err := types.Rate(currency, BaseCurrency)
	if err != nil {
		return amount
	}
	return amount * r
}

func stockValue(s Stock) float64      { return toBase(s.Value(), s.Currency) }
func stockInvestment(s Stock) float64 { return toBase(s.Investment(), s.Currency) }

// Summarize totals stocks and funds in BaseCurrency.
func Summarize(h Holdings) Summary {
	var value, invested float64
	for _, s := range h.Stocks {
		value += stockValue(s)
		invested += stockInvestment(s)
	}
	for _, f := range h.Funds {
		value += f.Value()
		invested += f.Investment()
	}
	sum := Summary{
		TotalValue:      value,
		TotalInvestment: invested,
		TotalPnL:        value - invested,
		Currency:        BaseCurrency,
	}
	if invested > 0 {
		sum.TotalPnLPct = sum.TotalPnL / invested * 100
	}
	return sum
}

// PennyStocks returns stocks quoted below PennyThreshold in their own currency.
func PennyStocks(h Holdings) []Stock {
	out := make([]Stock, 0)
	for _, s := range h.Stocks {
		if s.CurrentPrice < PennyThreshold {
			out = append(out, s)
		}
	}
	return out
}

func BySector(h Holdings) []Group {
	return group(h, func(s Stock) string { return s.Sector })
}

func ByCountry(h Holdings) []Group {
	return group(h, func(s Stock) string { return s.Country })
}

func group(h Holdings, key func(Stock) string) []Group {
	var groups []Group
	index := map[string]int{}
	sectors := []map[string]struct{}{}
	var total float64
	for _, s := range h.Stocks {
		k := key(s)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Name: k})
			sectors = append(sectors, map[string]struct{}{})
		}
		g := &groups[i]
		g.Value += stockValue(s)
		g.Investment += stockInvestment(s)
		g.Count++
		g.Members = append(g.Members, s.Name)
		sectors[i][s.Sector] = struct{}{}
		total += stockValue(s)
	}
	for i := range groups {
		groups[i].Sectors = len(sectors[i])
		if total > 0 {
			groups[i].AllocationPct = groups[i].Value / total * 100
		}
	}
	return groups
}

func Diversify(h Holdings) Diversification {
	sectors := map[string]struct{}{}
	countries := map[string]struct{}{}
	for _, s := range h.Stocks {
		sectors[s.Sector] = struct{}{}
		countries[s.Country] = struct{}{}
	}
	d := Diversification{
		Stocks:    len(h.Stocks),
		Sectors:   len(sectors),
		Countries: len(countries),
	}
	d.Score = DiversificationScore(d.Stocks, d.Sectors, d.Countries)
	return d
}

// DiversificationScore rates breadth out of 10.
func DiversificationScore(stocks, sectors, countries int) int {
	score := 0
	switch {
	case stocks >= 10:
		score += 3
	case stocks >= 5:
		score += 2
	default:
		score++
	}
	switch {
	case sectors >= 5:
		score += 4
	case sectors >= 3:
		score += 3
	default:
		score++
	}
	if countries >= 2 {
		score += 3
	} else {
		score++
	}
	return min(score, 10)
}

// Concentration returns the largest group's share of total stock value, in [0,1].
func Concentration(groups []Group) float64 {
	var total, top float64
	for _, g := range groups {
		total += g.Value
		top = max(top, g.Value)
	}
	if total == 0 {
		return 0
	}
	return top / total
}
