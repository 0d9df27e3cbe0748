// README: Built-in demo holdings used when no Postgres source is configured.
package portfolio

import (
	"context"

	"wealthlens/internal/types"
)

func defaultHoldings() Holdings {
	return Holdings{
		Stocks: []Stock{
			{"RELIANCE.NS", "Reliance Industries", 1000, 2500, 2650, types.INR, "Oil & Gas", "India", "Large Cap"},
			{"TCS.NS", "Tata Consultancy Services", 500, 3800, 3950, types.INR, "IT", "India", "Large Cap"},
			{"INFY.NS", "Infosys", 800, 1400, 1520, types.INR, "IT", "India", "Large Cap"},
			{"HDFCBANK.NS", "HDFC Bank", 1200, 1600, 1680, types.INR, "Banking", "India", "Large Cap"},
			{"ICICIBANK.NS", "ICICI Bank", 1500, 900, 950, types.INR, "Banking", "India", "Large Cap"},
			{"AAPL", "Apple Inc", 50, 150, 175, types.USD, "Technology", "USA", "Large Cap"},
			{"MSFT", "Microsoft Corporation", 40, 280, 320, types.USD, "Technology", "USA", "Large Cap"},
			{"GOOGL", "Alphabet Inc", 30, 120, 140, types.USD, "Technology", "USA", "Large Cap"},
			{"AMZN", "Amazon.com Inc", 60, 130, 145, types.USD, "Consumer Discretionary", "USA", "Large Cap"},
			{"TSLA", "Tesla Inc", 100, 200, 220, types.USD, "Automotive", "USA", "Large Cap"},
			{"SUZLON.NS", "Suzlon Energy", 5000, 8, 9.5, types.INR, "Energy", "India", "Small Cap"},
			{"JPASSOCIAT.NS", "Jaiprakash Associates", 10000, 5, 6.2, types.INR, "Construction", "India", "Small Cap"},
			{"YESBANK.NS", "Yes Bank", 2000, 12, 15.5, types.INR, "Banking", "India", "Mid Cap"},
		},
		Funds: []Fund{
			{"HDFC Mid-Cap Opportunities Fund", 1000, 45.5, 48.2, "Mid Cap"},
			{"Axis Bluechip Fund", 800, 35.2, 37.8, "Large Cap"},
		},
	}
}

// StaticSource serves the built-in dataset. Each call returns a fresh copy.
type StaticSource struct{}

func NewStaticSource() StaticSource { return StaticSource{} }

func (StaticSource) Holdings(ctx context.Context) (Holdings, error) {
	return defaultHoldings(), nil
}
